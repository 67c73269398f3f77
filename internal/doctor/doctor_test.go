package doctor_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/doctor"
	"github.com/hbjs97/pyctx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInterpreter_OK(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/usr/bin/python3 --version", "Python 3.12.1\n", nil)

	res := doctor.CheckInterpreter(context.Background(), fc, "/usr/bin/python3")
	assert.Equal(t, doctor.StatusOK, res.Status)
	assert.Contains(t, res.Message, "Python 3.12.1")
}

func TestCheckInterpreter_NotResolved(t *testing.T) {
	res := doctor.CheckInterpreter(context.Background(), testutil.NewFakeCommander(), "")
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.NotEmpty(t, res.Fix)
}

func TestCheckInterpreter_RunFails(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/usr/bin/python3 --version", "", errors.New("exec format error"))

	res := doctor.CheckInterpreter(context.Background(), fc, "/usr/bin/python3")
	assert.Equal(t, doctor.StatusFail, res.Status)
}

func TestCheckPip(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/usr/bin/python3 -m pip --version", "pip 24.0\n", nil)

	res := doctor.CheckPip(context.Background(), fc, "/usr/bin/python3")
	assert.Equal(t, doctor.StatusOK, res.Status)
}

func TestCheckPip_Missing(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/usr/bin/python3 -m pip --version", "No module named pip", errors.New("exit status 1"))

	res := doctor.CheckPip(context.Background(), fc, "/usr/bin/python3")
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.Contains(t, res.Fix, "ensurepip")
}

func TestCheckVenv(t *testing.T) {
	project := testutil.TempProject(t)
	cfg := config.Default()

	res := doctor.CheckVenv(project, cfg)
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.Contains(t, res.Fix, "pyctx setup")

	testutil.WriteVenv(t, project, ".venv")
	res = doctor.CheckVenv(project, cfg)
	assert.Equal(t, doctor.StatusOK, res.Status)
}

func TestCheckManifest(t *testing.T) {
	project := testutil.TempProject(t)
	cfg := config.Default()

	res := doctor.CheckManifest(project, cfg)
	assert.Equal(t, doctor.StatusWarn, res.Status)

	testutil.WriteManifest(t, project, "requirements.txt")
	res = doctor.CheckManifest(project, cfg)
	assert.Equal(t, doctor.StatusOK, res.Status)
}

func TestCheckShellHook(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")

	res := doctor.CheckShellHook(rcPath)
	assert.Equal(t, doctor.StatusWarn, res.Status)

	require.NoError(t, os.WriteFile(rcPath, []byte("# pyctx shell integration (zsh)\n"), 0600))
	res = doctor.CheckShellHook(rcPath)
	assert.Equal(t, doctor.StatusOK, res.Status)
}

func TestCheckShellHook_UnknownShell(t *testing.T) {
	res := doctor.CheckShellHook("")
	assert.Equal(t, doctor.StatusWarn, res.Status)
}

func TestRunAll(t *testing.T) {
	project := testutil.TempProject(t)
	testutil.WriteVenv(t, project, ".venv")
	testutil.WriteManifest(t, project, "requirements.txt")

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Output: []byte("ok")}

	results := doctor.RunAll(context.Background(), fc, config.Default(), project, "/usr/bin/python3", "")
	require.Len(t, results, 5)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"python", "pip", "venv", "manifest", "shell_hook"}, names)
}
