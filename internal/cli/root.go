package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyctx/internal/cache"
	"github.com/hbjs97/pyctx/internal/cmdexec"
	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/spf13/cobra"
)

// App은 CLI 의존성 주입 지점이다. 테스트에서는 FakeCommander와 임시 경로를
// 주입한다.
type App struct {
	CfgPath   string
	Commander cmdexec.Commander
	// FormRunner가 nil이면 setup은 대화형 폼 없이 기본 설정으로 진행한다.
	FormRunner setup.FormRunner

	// Stdout은 eval 가능한 셸 코드 전용이다. 사람이 읽는 출력은 Stderr로 간다.
	Stdout io.Writer
	Stderr io.Writer

	// WorkDir는 프로젝트 디렉토리다. 비어있으면 os.Getwd.
	WorkDir string
	// HomeDir는 홈 디렉토리다. 비어있으면 os.UserHomeDir.
	HomeDir string
	// PathVar는 세션 PATH 값이다. 비어있으면 $PATH.
	PathVar string
	// LookPath는 테스트용. 비어있으면 exec.LookPath.
	LookPath func(name string) (string, error)

	verbose bool
}

// NewRootCmd는 프로덕션 기본값으로 구성된 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	app := &App{
		Commander:  &cmdexec.RealCommander{},
		FormRunner: &setup.HuhFormRunner{},
	}
	return app.NewRootCmd()
}

// NewRootCmd는 pyctx CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pyctx",
		Short:        "Python 가상환경 세션 매니저",
		SilenceUsage: true,
	}

	if a.CfgPath == "" {
		a.CfgPath = filepath.Join(a.homeDir(), ".config", "pyctx", "config.toml")
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newSetupCmd(),
		a.newInstallCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

func (a *App) workDir() (string, error) {
	if a.WorkDir != "" {
		return a.WorkDir, nil
	}
	return os.Getwd()
}

func (a *App) homeDir() string {
	if a.HomeDir != "" {
		return a.HomeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(a.stderr(), "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}

func (a *App) pathVar() string {
	if a.PathVar != "" {
		return a.PathVar
	}
	return os.Getenv("PATH")
}

func (a *App) cachePath() string {
	return filepath.Join(a.homeDir(), ".config", "pyctx", "cache.json")
}

// loadedCache는 캐시 로드 실패를 빈 캐시로 처리한다.
func (a *App) loadedCache() *cache.Cache {
	c, err := cache.Load(a.cachePath())
	if err != nil {
		return cache.New()
	}
	return c
}

// newResolver는 App 설정이 주입된 Resolver를 생성한다.
func (a *App) newResolver(cfg *config.Config, c *cache.Cache) *resolver.Resolver {
	r := resolver.New(cfg, c, a.homeDir())
	if a.LookPath != nil {
		r = r.WithLookPath(a.LookPath)
	}
	return r
}
