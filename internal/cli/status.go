package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/hbjs97/pyctx/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 프로젝트의 환경 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd.Context())
		},
	}
}

func (a *App) runStatus(ctx context.Context) error {
	cwd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	w := a.stderr()
	fmt.Fprintf(w, "프로젝트: %s\n", cwd)

	if env, detectErr := venv.Detect(cwd, cfg.VenvDir); detectErr == nil {
		fmt.Fprintf(w, "  venv:      %s\n", env.Root)
	} else {
		fmt.Fprintf(w, "  venv:      없음 (%s)\n", filepath.Join(cwd, cfg.VenvDir))
	}

	if _, statErr := os.Stat(filepath.Join(cwd, cfg.Requirements)); statErr == nil {
		fmt.Fprintf(w, "  manifest:  %s\n", cfg.Requirements)
	} else {
		fmt.Fprintf(w, "  manifest:  없음 (%s)\n", cfg.Requirements)
	}

	if _, statErr := os.Stat(filepath.Join(cwd, cfg.SetupScript)); statErr == nil {
		fmt.Fprintf(w, "  setup:     %s\n", cfg.SetupScript)
	} else {
		fmt.Fprintf(w, "  setup:     없음 (%s)\n", cfg.SetupScript)
	}

	result, resolveErr := a.newResolver(cfg, a.loadedCache()).Resolve(ctx)
	switch {
	case resolveErr == nil:
		fmt.Fprintf(w, "  python:    %s (판정: %s)\n", result.Path, result.Reason)
	case errors.Is(resolveErr, resolver.ErrInterpreterNotFound):
		fmt.Fprintf(w, "  python:    없음\n")
	default:
		return resolveErr
	}

	return nil
}
