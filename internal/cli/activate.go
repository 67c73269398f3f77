package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hbjs97/pyctx/internal/cache"
	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/hbjs97/pyctx/internal/shell"
	"github.com/hbjs97/pyctx/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string
	var hookOnly bool

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "현재 디렉토리의 가상환경 활성화 코드를 내보낸다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hookOnly {
				fmt.Fprint(a.stdout(), shell.HookSnippet(shellType))
				return nil
			}
			return a.runActivate(cmd.Context(), shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "hook 스니펫만 출력")
	return cmd
}

// runActivate는 세션 환경 변경 사항을 stdout으로 내보낸다. hook이 eval하는
// 출력이므로 어떤 경우에도 에러로 셸을 깨뜨리지 않는다.
func (a *App) runActivate(ctx context.Context, shellType string) error {
	cwd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		// config 로드 실패 시 deactivate
		a.errorf("설정 파일 오류: %v", err)
		fmt.Fprint(a.stdout(), shell.Deactivate(shellType))
		return nil
	}

	session := shell.NewSession(a.pathVar())

	env, detectErr := venv.Detect(cwd, cfg.VenvDir)
	if detectErr == nil {
		session.PrependPath(env.BinDir)
		session.Set("VIRTUAL_ENV", env.Root)
		a.successf("가상환경 활성화: %s", env.Root)
	} else {
		a.errorf("가상환경 없음: %s", filepath.Join(cwd, cfg.VenvDir))
		a.hintf("pyctx-setup 으로 환경을 생성하세요")
		fmt.Fprint(a.stdout(), shell.Deactivate(shellType))
	}

	// 인터프리터 경로 보정. 런처 스텁이 python을 가로채는 환경 대응이며
	// 실패해도 세션은 계속 사용 가능해야 한다.
	if result := a.repairInterpreterPath(ctx, cfg, session); result != nil {
		target := result.Path
		if env != nil {
			// 활성화된 가상환경의 인터프리터가 별칭 대상으로 우선한다
			target = env.Python
		}
		session.Alias("python", target)
	}

	fmt.Fprint(a.stdout(), session.Render(shellType))
	return nil
}

// repairInterpreterPath는 인터프리터를 판정하여 그 디렉토리를 PATH에 보정한다.
// 판정 실패는 --verbose에서만 보이는 진단이다.
func (a *App) repairInterpreterPath(ctx context.Context, cfg *config.Config, session *shell.Session) *resolver.Result {
	c := a.loadedCache()
	r := a.newResolver(cfg, c)
	result, err := r.Resolve(ctx)
	if err != nil {
		if a.verbose {
			a.hintf("인터프리터 판정 실패: %v", err)
		}
		return nil
	}

	session.PrependPath(filepath.Dir(result.Path))

	if result.Reason != "cache" && result.Reason != "explicit" {
		c.Set(r.CacheKey(), cache.Entry{
			Path:       result.Path,
			Reason:     result.Reason,
			ResolvedAt: time.Now().Format(time.RFC3339),
			ConfigHash: cfg.ConfigHash(),
		})
		_ = c.Save(a.cachePath()) // 캐시 저장 실패는 치명적이지 않음
	}

	if a.verbose {
		a.hintf("python: %s (판정: %s)", result.Path, result.Reason)
	}
	return result
}
