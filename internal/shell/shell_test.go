package shell_test

import (
	"testing"

	"github.com/hbjs97/pyctx/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestSession_PrependPath(t *testing.T) {
	s := shell.NewSession("/usr/bin:/bin")

	added := s.PrependPath("/work/.venv/bin")
	assert.True(t, added)
	assert.Equal(t, "/work/.venv/bin:/usr/bin:/bin", s.PathVar())
}

func TestSession_PrependPath_AlreadyPresent(t *testing.T) {
	s := shell.NewSession("/work/.venv/bin:/usr/bin")

	added := s.PrependPath("/work/.venv/bin")
	assert.False(t, added)
	assert.Equal(t, "/work/.venv/bin:/usr/bin", s.PathVar())
	assert.False(t, s.Dirty())
}

func TestSession_Idempotent(t *testing.T) {
	once := shell.NewSession("/usr/bin")
	once.PrependPath("/work/.venv/bin")
	once.Set("VIRTUAL_ENV", "/work/.venv")

	twice := shell.NewSession("/usr/bin")
	twice.PrependPath("/work/.venv/bin")
	twice.Set("VIRTUAL_ENV", "/work/.venv")
	twice.PrependPath("/work/.venv/bin")
	twice.Set("VIRTUAL_ENV", "/work/.venv")

	assert.Equal(t, once.PathVar(), twice.PathVar())
	assert.Equal(t, once.Render("zsh"), twice.Render("zsh"))
}

func TestSession_Render_PosixShell(t *testing.T) {
	s := shell.NewSession("/usr/bin")
	s.PrependPath("/work/.venv/bin")
	s.Set("VIRTUAL_ENV", "/work/.venv")

	output := s.Render("zsh")
	assert.Contains(t, output, `export PATH='/work/.venv/bin:/usr/bin'`)
	assert.Contains(t, output, `export VIRTUAL_ENV='/work/.venv'`)
}

func TestSession_Render_Fish(t *testing.T) {
	s := shell.NewSession("/usr/bin")
	s.PrependPath("/work/.venv/bin")
	s.Set("VIRTUAL_ENV", "/work/.venv")

	output := s.Render("fish")
	assert.Contains(t, output, `set -gx PATH '/work/.venv/bin:/usr/bin'`)
	assert.Contains(t, output, `set -gx VIRTUAL_ENV '/work/.venv'`)
}

func TestSession_Render_QuotesMetacharacters(t *testing.T) {
	// 경로의 $와 백틱은 eval 시점에 확장되면 안 된다
	s := shell.NewSession("/usr/bin")
	s.PrependPath("/tmp/a$b`c/bin")

	assert.Contains(t, s.Render("zsh"), "export PATH='/tmp/a$b`c/bin:/usr/bin'")
	assert.Contains(t, s.Render("fish"), "set -gx PATH '/tmp/a$b`c/bin:/usr/bin'")
}

func TestSession_Render_QuotesSingleQuote(t *testing.T) {
	s := shell.NewSession("/usr/bin")
	s.Alias("python", "/opt/o'brien/python3")

	assert.Contains(t, s.Render("bash"), `alias python='/opt/o'\''brien/python3'`)
	assert.Contains(t, s.Render("fish"), `alias python '/opt/o\'brien/python3'`)
}

func TestSession_Render_Unchanged(t *testing.T) {
	s := shell.NewSession("/usr/bin:/bin")
	assert.Empty(t, s.Render("zsh"))
}

func TestSession_Alias(t *testing.T) {
	s := shell.NewSession("/usr/bin")
	s.Alias("python", "/opt/python/3.12/bin/python3")

	assert.Contains(t, s.Render("bash"), `alias python='/opt/python/3.12/bin/python3'`)
	assert.Contains(t, s.Render("fish"), `alias python '/opt/python/3.12/bin/python3'`)
}

func TestSession_Alias_Redefine(t *testing.T) {
	s := shell.NewSession("/usr/bin")
	s.Alias("python", "/old/python3")
	s.Alias("python", "/new/python3")

	output := s.Render("zsh")
	assert.Contains(t, output, `alias python='/new/python3'`)
	assert.NotContains(t, output, "/old/python3")
}

func TestDeactivate_PosixShell(t *testing.T) {
	assert.Contains(t, shell.Deactivate("zsh"), "unset VIRTUAL_ENV")
}

func TestDeactivate_Fish(t *testing.T) {
	assert.Contains(t, shell.Deactivate("fish"), "set -e VIRTUAL_ENV")
}

func TestHookSnippet_Zsh(t *testing.T) {
	snippet := shell.HookSnippet("zsh")
	assert.Contains(t, snippet, "pyctx activate --shell zsh")
	assert.Contains(t, snippet, "pyctx-setup()")
	assert.Contains(t, snippet, "pyctx-install()")
}

func TestHookSnippet_Bash(t *testing.T) {
	snippet := shell.HookSnippet("bash")
	assert.Contains(t, snippet, "pyctx activate --shell bash")
	assert.Contains(t, snippet, "pyctx-setup()")
}

func TestHookSnippet_Fish(t *testing.T) {
	snippet := shell.HookSnippet("fish")
	assert.Contains(t, snippet, "function pyctx-setup")
	assert.Contains(t, snippet, "pyctx activate --shell fish")
}

func TestHookSnippet_SetupReactivates(t *testing.T) {
	// setup 함수는 setup 성공 후 반드시 activate를 다시 평가해야 한다.
	for _, sh := range []string{"zsh", "bash"} {
		snippet := shell.HookSnippet(sh)
		assert.Contains(t, snippet, `command pyctx setup "$@" && eval "$(command pyctx activate --shell `+sh+`)"`)
	}
}

func TestHookSnippet_Unknown(t *testing.T) {
	assert.Empty(t, shell.HookSnippet("csh"))
}

func TestHookSnippet_KeepsStderrVisible(t *testing.T) {
	// 상태 메시지는 stderr로 나간다. 시작 eval이 stderr를 버리면
	// 활성화 성공/안내 메시지가 사용자에게 보이지 않는다.
	for _, sh := range []string{"zsh", "bash", "fish"} {
		assert.NotContains(t, shell.HookSnippet(sh), "2>/dev/null", sh)
	}
}
