package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/pip"
	"github.com/hbjs97/pyctx/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "manifest의 의존성을 가상환경에 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd.Context())
		},
	}
}

func (a *App) runInstall(ctx context.Context) error {
	cwd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("cli.install: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	// 설치 대상 인터프리터: 가상환경이 있으면 그 내부 인터프리터를 쓴다
	var python string
	if env, detectErr := venv.Detect(cwd, cfg.VenvDir); detectErr == nil {
		python = env.Python
	} else {
		result, resolveErr := a.newResolver(cfg, a.loadedCache()).Resolve(ctx)
		if resolveErr != nil {
			a.errorf("설치에 사용할 python 인터프리터가 없습니다")
			a.hintf("pyctx-setup 으로 가상환경을 먼저 생성하세요")
			return fmt.Errorf("cli.install: %w", resolveErr)
		}
		python = result.Path
		a.hintf("가상환경 없음 — %s 인터프리터로 설치합니다", python)
	}

	if err := pip.NewAdapter(a.Commander).Install(ctx, python, cwd, cfg.Requirements); err != nil {
		if errors.Is(err, pip.ErrManifestMissing) {
			a.errorf("의존성 manifest 없음: %s", cfg.Requirements)
			a.hintf("현재 디렉토리가 프로젝트 루트인지 확인하세요")
			return err
		}
		a.errorf("의존성 설치 실패")
		return err
	}

	a.successf("의존성 설치 완료: %s", cfg.Requirements)
	return nil
}
