package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var bootstrap bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "프로젝트 setup 스크립트를 실행하여 가상환경을 구성한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd.Context(), bootstrap)
		},
	}
	cmd.Flags().BoolVar(&bootstrap, "bootstrap", false, "setup 스크립트 없이 venv 생성 + 의존성 설치")
	return cmd
}

func (a *App) runSetup(ctx context.Context, bootstrap bool) error {
	cwd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}

	runner := &setup.Runner{
		CfgPath:    a.CfgPath,
		ProjectDir: cwd,
		Home:       a.homeDir(),
		Commander:  a.Commander,
		FormRunner: a.FormRunner,
		Out:        a.stderr(),
	}

	cfg, err := runner.EnsureConfig(ctx)
	if err != nil {
		return err
	}

	if bootstrap {
		result, err := a.newResolver(cfg, a.loadedCache()).Resolve(ctx)
		if err != nil {
			a.errorf("python 인터프리터를 찾지 못했습니다")
			a.hintf("config.toml의 python.executable 또는 python.install_roots를 확인하세요")
			return fmt.Errorf("cli.setup: %w", err)
		}
		if err := runner.Bootstrap(ctx, cfg, result.Path); err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
	} else {
		if err := runner.RunProjectSetup(ctx); err != nil {
			if errors.Is(err, setup.ErrScriptMissing) {
				a.errorf("setup 스크립트 없음: %s", cfg.SetupScript)
				a.hintf("현재 디렉토리가 프로젝트 루트인지 확인하세요")
			}
			return err
		}
	}

	a.successf("setup 완료")
	a.hintf(`활성화: eval "$(pyctx activate)" (hook 설치 시 pyctx-setup이 자동으로 수행)`)
	return nil
}
