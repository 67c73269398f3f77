package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyctx/internal/cache"
	"github.com/hbjs97/pyctx/internal/cmdexec"
	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/pip"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/hbjs97/pyctx/internal/venv"
)

// Runner는 setup 플로우의 진입점이다.
type Runner struct {
	CfgPath    string
	ProjectDir string
	Home       string
	Commander  cmdexec.Commander
	// FormRunner가 nil이면 최초 설정 폼 없이 기본 설정으로 진행한다.
	FormRunner FormRunner
	// Out은 상태 출력 대상이다. stdout은 셸 코드 전용이므로 stderr를 쓴다.
	Out io.Writer
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stderr
}

// EnsureConfig는 설정 파일을 로드하고, 없으면 최초 설정 플로우를 실행한다.
// FormRunner가 없으면 기본 설정을 그대로 사용한다 (zero-config).
func (r *Runner) EnsureConfig(ctx context.Context) (*config.Config, error) {
	if _, err := os.Stat(r.CfgPath); err == nil || r.FormRunner == nil {
		return config.Load(r.CfgPath)
	}
	return r.runFirstTime(ctx)
}

// runFirstTime은 최초 설정 폼을 실행하고 설정 파일과 셸 hook을 설치한다.
func (r *Runner) runFirstTime(ctx context.Context) (*config.Config, error) {
	fmt.Fprintln(r.out(), "pyctx 초기 설정을 시작합니다.")

	defaults := config.Default()
	rslv := resolver.New(defaults, cache.New(), r.Home)
	candidates := rslv.Candidates(ctx)

	input, err := r.FormRunner.RunSetupForm(&Input{
		VenvDir:      defaults.VenvDir,
		Requirements: defaults.Requirements,
		InstallHook:  true,
	}, candidates)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.VenvDir = input.VenvDir
	cfg.Requirements = input.Requirements
	cfg.Python.Executable = input.PythonPath

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out(), "설정 파일이 저장되었습니다: %s\n", r.CfgPath)

	if input.InstallHook {
		shellType := DetectShell()
		rcPath := ShellRCPath(r.Home, shellType)
		if rcPath == "" {
			fmt.Fprintf(r.out(), "경고: 지원하지 않는 셸 (%s) — hook을 직접 설치하세요\n", shellType)
		} else if err := InstallShellHook(shellType, rcPath); err != nil {
			fmt.Fprintf(r.out(), "경고: 셸 hook 설치 실패: %v\n", err)
		} else {
			fmt.Fprintf(r.out(), "셸 hook이 설치되었습니다: %s\n", rcPath)
		}
	}

	return cfg, nil
}

// RunProjectSetup은 프로젝트 setup 스크립트를 자식 프로세스로 실행하고
// 완료까지 대기한다. 출력은 캡처하지 않고 그대로 내보낸다.
// 스크립트 실패는 경고로 드러내되 이후 활성화 단계를 막지 않는다.
func (r *Runner) RunProjectSetup(ctx context.Context) error {
	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return err
	}

	scriptPath := filepath.Join(r.ProjectDir, cfg.SetupScript)
	if _, err := os.Stat(scriptPath); err != nil {
		return fmt.Errorf("setup.RunProjectSetup: %w: %s", ErrScriptMissing, scriptPath)
	}

	fmt.Fprintf(r.out(), "setup 스크립트 실행: %s\n", scriptPath)
	if err := r.Commander.RunInteractive(ctx, r.ProjectDir, "sh", scriptPath); err != nil {
		fmt.Fprintf(r.out(), "경고: setup 스크립트가 비정상 종료했습니다 (%v) — 활성화는 계속 진행합니다\n", err)
	}
	return nil
}

// Bootstrap은 setup 스크립트 없이 가상환경을 직접 구성한다:
// 인터프리터로 venv를 생성하고, manifest가 있으면 의존성을 설치한다.
func (r *Runner) Bootstrap(ctx context.Context, cfg *config.Config, python string) error {
	venvPath := filepath.Join(r.ProjectDir, cfg.VenvDir)
	fmt.Fprintf(r.out(), "가상환경 생성: %s\n", venvPath)
	if err := venv.Create(ctx, r.Commander, python, venvPath); err != nil {
		return err
	}

	env, err := venv.Detect(r.ProjectDir, cfg.VenvDir)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(filepath.Join(r.ProjectDir, cfg.Requirements)); statErr != nil {
		return nil // manifest 없으면 venv 생성까지만
	}

	fmt.Fprintf(r.out(), "의존성 설치: %s\n", cfg.Requirements)
	return pip.NewAdapter(r.Commander).Install(ctx, env.Python, r.ProjectDir, cfg.Requirements)
}
