package setup_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/hbjs97/pyctx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFormRunner returns pre-configured answers without a TUI.
type mockFormRunner struct {
	input      *setup.Input
	confirm    bool
	candidates []string
}

func (m *mockFormRunner) RunSetupForm(defaults *setup.Input, candidates []string) (*setup.Input, error) {
	m.candidates = candidates
	if m.input != nil {
		return m.input, nil
	}
	return defaults, nil
}

func (m *mockFormRunner) RunConfirm(string) (bool, error) {
	return m.confirm, nil
}

func newRunner(t *testing.T, project string, fc *testutil.FakeCommander, form setup.FormRunner) (*setup.Runner, *bytes.Buffer) {
	t.Helper()
	home := t.TempDir()
	out := &bytes.Buffer{}
	return &setup.Runner{
		CfgPath:    filepath.Join(home, ".config", "pyctx", "config.toml"),
		ProjectDir: project,
		Home:       home,
		Commander:  fc,
		FormRunner: form,
		Out:        out,
	}, out
}

func TestRunProjectSetup_ScriptPresent(t *testing.T) {
	project := testutil.TempProject(t)
	scriptPath := testutil.WriteSetupScript(t, project, "setup.sh")

	fc := testutil.NewFakeCommander()
	fc.Register("sh "+scriptPath, "", nil)

	r, _ := newRunner(t, project, fc, nil)
	require.NoError(t, r.RunProjectSetup(context.Background()))

	assert.Equal(t, 1, fc.CallCount("sh "+scriptPath))
	assert.Equal(t, []string{project}, fc.InteractiveDirs)
}

func TestRunProjectSetup_ScriptAbsent(t *testing.T) {
	project := testutil.TempProject(t)
	fc := testutil.NewFakeCommander()

	r, _ := newRunner(t, project, fc, nil)
	err := r.RunProjectSetup(context.Background())

	assert.ErrorIs(t, err, setup.ErrScriptMissing)
	assert.Empty(t, fc.Calls, "스크립트 없이는 아무것도 실행하면 안 된다")
}

func TestRunProjectSetup_ScriptFailureWarnsAndContinues(t *testing.T) {
	project := testutil.TempProject(t)
	scriptPath := testutil.WriteSetupScript(t, project, "setup.sh")

	fc := testutil.NewFakeCommander()
	fc.Register("sh "+scriptPath, "", errors.New("exit status 2"))

	r, out := newRunner(t, project, fc, nil)
	err := r.RunProjectSetup(context.Background())

	require.NoError(t, err, "스크립트 실패는 전체 플로우를 막지 않는다")
	assert.Contains(t, out.String(), "경고")
}

func TestRunProjectSetup_ConfigErrorIsNotScriptMissing(t *testing.T) {
	project := testutil.TempProject(t)
	fc := testutil.NewFakeCommander()

	r, _ := newRunner(t, project, fc, nil)
	r.CfgPath = testutil.TempConfigFile(t, "venv_dir = [broken")
	err := r.RunProjectSetup(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.NotErrorIs(t, err, setup.ErrScriptMissing)
}

func TestEnsureConfig_ZeroConfig(t *testing.T) {
	project := testutil.TempProject(t)
	r, _ := newRunner(t, project, testutil.NewFakeCommander(), nil)

	cfg, err := r.EnsureConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ".venv", cfg.VenvDir)
}

func TestEnsureConfig_ExistingFileSkipsForm(t *testing.T) {
	project := testutil.TempProject(t)
	form := &mockFormRunner{input: &setup.Input{VenvDir: "should-not-be-used"}}
	r, _ := newRunner(t, project, testutil.NewFakeCommander(), form)

	require.NoError(t, config.Save(r.CfgPath, config.Default()))

	cfg, err := r.EnsureConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ".venv", cfg.VenvDir)
}

func TestEnsureConfig_FirstRunSavesConfigAndHook(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	project := testutil.TempProject(t)
	form := &mockFormRunner{input: &setup.Input{
		VenvDir:      "env",
		Requirements: "deps.txt",
		InstallHook:  true,
	}}
	r, out := newRunner(t, project, testutil.NewFakeCommander(), form)

	cfg, err := r.EnsureConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.VenvDir)
	assert.Equal(t, "deps.txt", cfg.Requirements)

	loaded, err := config.Load(r.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, "env", loaded.VenvDir)

	rcData, err := os.ReadFile(filepath.Join(r.Home, ".zshrc"))
	require.NoError(t, err)
	assert.Contains(t, string(rcData), "pyctx shell integration")
	assert.Contains(t, out.String(), "설정 파일이 저장되었습니다")
}

func TestEnsureConfig_FirstRunNoHook(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	project := testutil.TempProject(t)
	form := &mockFormRunner{input: &setup.Input{
		VenvDir:      ".venv",
		Requirements: "requirements.txt",
		InstallHook:  false,
	}}
	r, _ := newRunner(t, project, testutil.NewFakeCommander(), form)

	_, err := r.EnsureConfig(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(r.Home, ".zshrc"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBootstrap_CreatesVenvAndInstalls(t *testing.T) {
	project := testutil.TempProject(t)
	testutil.WriteManifest(t, project, "requirements.txt")
	// venv.Create 이후 감지될 환경을 미리 만들어 둔다 (FakeCommander는
	// 실제 파일을 만들지 않는다)
	testutil.WriteVenv(t, project, ".venv")

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}

	r, _ := newRunner(t, project, fc, nil)
	cfg := config.Default()

	require.NoError(t, r.Bootstrap(context.Background(), cfg, "/usr/bin/python3"))

	assert.Equal(t, 1, fc.CallCount("/usr/bin/python3 -m venv "+filepath.Join(project, ".venv")))
	venvPython := filepath.Join(project, ".venv", "bin", "python")
	assert.Equal(t, 1, fc.CallCount(venvPython+" -m pip install -r "))
}

func TestBootstrap_NoManifestSkipsInstall(t *testing.T) {
	project := testutil.TempProject(t)
	testutil.WriteVenv(t, project, ".venv")

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}

	r, _ := newRunner(t, project, fc, nil)
	require.NoError(t, r.Bootstrap(context.Background(), config.Default(), "/usr/bin/python3"))

	assert.Equal(t, 0, fc.CallCount("/usr/bin/python3 -m pip"))
	assert.False(t, fc.Called(filepath.Join(project, ".venv", "bin", "python")))
}
