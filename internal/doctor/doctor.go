package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyctx/internal/cmdexec"
	"github.com/hbjs97/pyctx/internal/config"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckInterpreter는 판정된 인터프리터가 실제로 실행되는지 확인한다.
func CheckInterpreter(ctx context.Context, cmd cmdexec.Commander, pythonPath string) DiagResult {
	if pythonPath == "" {
		return DiagResult{
			Name:    "python",
			Status:  StatusFail,
			Message: "python 인터프리터를 찾지 못함",
			Fix:     "config.toml의 python.executable 또는 python.install_roots 확인",
		}
	}
	out, err := cmd.Run(ctx, pythonPath, "--version")
	if err != nil {
		return DiagResult{
			Name:    "python",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패", pythonPath),
			Fix:     "인터프리터 설치 상태를 확인하세요",
		}
	}
	return DiagResult{
		Name:    "python",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%s)", strings.TrimSpace(string(out)), pythonPath),
	}
}

// CheckPip은 인터프리터에서 pip 모듈을 사용할 수 있는지 확인한다.
func CheckPip(ctx context.Context, cmd cmdexec.Commander, pythonPath string) DiagResult {
	if pythonPath == "" {
		return DiagResult{
			Name:    "pip",
			Status:  StatusFail,
			Message: "인터프리터 없이 pip 확인 불가",
		}
	}
	out, err := cmd.Run(ctx, pythonPath, "-m", "pip", "--version")
	if err != nil {
		return DiagResult{
			Name:    "pip",
			Status:  StatusFail,
			Message: "pip 모듈 없음",
			Fix:     fmt.Sprintf("%s -m ensurepip --upgrade 실행", pythonPath),
		}
	}
	return DiagResult{
		Name:    "pip",
		Status:  StatusOK,
		Message: strings.TrimSpace(string(out)),
	}
}

// CheckVenv는 프로젝트 가상환경 존재 여부를 확인한다.
func CheckVenv(projectDir string, cfg *config.Config) DiagResult {
	activate := filepath.Join(projectDir, cfg.VenvDir, "bin", "activate")
	if _, err := os.Stat(activate); err != nil {
		return DiagResult{
			Name:    "venv",
			Status:  StatusFail,
			Message: fmt.Sprintf("가상환경 없음: %s", filepath.Join(projectDir, cfg.VenvDir)),
			Fix:     "pyctx setup 실행",
		}
	}
	return DiagResult{
		Name:    "venv",
		Status:  StatusOK,
		Message: fmt.Sprintf("가상환경 감지: %s", filepath.Join(projectDir, cfg.VenvDir)),
	}
}

// CheckManifest는 의존성 manifest 존재 여부를 확인한다.
func CheckManifest(projectDir string, cfg *config.Config) DiagResult {
	manifest := filepath.Join(projectDir, cfg.Requirements)
	if _, err := os.Stat(manifest); err != nil {
		return DiagResult{
			Name:    "manifest",
			Status:  StatusWarn,
			Message: fmt.Sprintf("manifest 없음: %s", manifest),
			Fix:     "requirements.txt를 작성하거나 config.toml의 requirements를 수정하세요",
		}
	}
	return DiagResult{
		Name:    "manifest",
		Status:  StatusOK,
		Message: fmt.Sprintf("manifest 감지: %s", manifest),
	}
}

// CheckShellHook은 rc 파일에 pyctx hook이 설치되어 있는지 확인한다.
func CheckShellHook(rcPath string) DiagResult {
	if rcPath == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: "지원하지 않는 셸 — hook 확인 불가",
		}
	}
	data, err := os.ReadFile(rcPath)
	if err != nil || !strings.Contains(string(data), "pyctx shell integration") {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("셸 hook 미설치: %s", rcPath),
			Fix:     "pyctx setup 실행 (hook 자동 설치)",
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: fmt.Sprintf("셸 hook 설치됨: %s", rcPath),
	}
}

// RunAll은 모든 진단을 실행한다. pythonPath는 resolver 판정 결과이며
// 판정 실패 시 빈 문자열이다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config, projectDir, pythonPath, rcPath string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckInterpreter(ctx, cmd, pythonPath))
	results = append(results, CheckPip(ctx, cmd, pythonPath))
	results = append(results, CheckVenv(projectDir, cfg))
	results = append(results, CheckManifest(projectDir, cfg))
	results = append(results, CheckShellHook(rcPath))
	return results
}
