package cli

import (
	"context"
	"fmt"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/doctor"
	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context())
		},
	}
}

func (a *App) runDoctor(ctx context.Context) error {
	cwd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("cli.doctor: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Fprintf(a.stderr(), "[FAIL] config: %v\n", err)
		fmt.Fprintln(a.stderr(), "      Fix: 설정 파일을 확인하거나 삭제 후 pyctx setup 실행")
		cfg = config.Default()
	}

	// 판정 실패는 doctor 결과로 표현한다 — 빈 경로로 넘긴다
	var pythonPath string
	if result, resolveErr := a.newResolver(cfg, a.loadedCache()).Resolve(ctx); resolveErr == nil {
		pythonPath = result.Path
	}

	rcPath := setup.ShellRCPath(a.homeDir(), setup.DetectShell())

	results := doctor.RunAll(ctx, a.Commander, cfg, cwd, pythonPath, rcPath)
	a.printDiagResults(results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func (a *App) printDiagResults(results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(a.stderr(), "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(a.stderr(), "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
