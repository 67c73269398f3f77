package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 pyctx 설정 파일의 최상위 구조체다.
// 프로젝트 내 고정 경로(venv 디렉토리, setup 스크립트, 의존성 manifest)를
// 모두 설정으로 외부화하여 테스트에서 fixture를 가리킬 수 있게 한다.
type Config struct {
	Version      int          `toml:"version"`
	VenvDir      string       `toml:"venv_dir"`
	SetupScript  string       `toml:"setup_script"`
	Requirements string       `toml:"requirements"`
	CacheTTLDays int          `toml:"cache_ttl_days"`
	Python       PythonConfig `toml:"python"`
}

// PythonConfig는 인터프리터 탐색 설정이다.
type PythonConfig struct {
	// Version은 선호하는 메이저 버전이다 (예: "3").
	Version string `toml:"version"`
	// Executable은 탐색을 생략하고 사용할 인터프리터 절대 경로다 (선택).
	Executable string `toml:"executable"`
	// InstallRoots는 인터프리터를 재귀 탐색할 설치 루트 목록이다. ~ 확장 지원.
	InstallRoots []string `toml:"install_roots"`
}

// Default는 설정 파일 없이 동작하는 기본 설정을 반환한다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다 — pyctx는 zero-config로 동작해야 한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 직렬화하여 저장한다. 상위 디렉토리가 없으면 생성한다.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// ConfigHash는 캐시 무효화에 사용하는 설정 지문이다.
// 인터프리터 판정에 영향을 주는 필드만 포함한다.
func (c *Config) ConfigHash() string {
	var sb strings.Builder
	sb.WriteString(c.Python.Version)
	sb.WriteString("|")
	sb.WriteString(c.Python.Executable)
	sb.WriteString("|")
	sb.WriteString(strings.Join(c.Python.InstallRoots, ":"))
	sum := sha256.Sum256([]byte(sb.String()))
	return fmt.Sprintf("%x", sum[:8])
}

// ResolvedInstallRoots는 ~ 확장이 적용된 설치 루트 목록을 반환한다.
func (c *Config) ResolvedInstallRoots(home string) []string {
	roots := make([]string, 0, len(c.Python.InstallRoots))
	for _, r := range c.Python.InstallRoots {
		roots = append(roots, ExpandHome(home, r))
	}
	return roots
}

// ExpandHome은 경로 선두의 ~를 홈 디렉토리로 치환한다.
func ExpandHome(home, path string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) applyDefaults() {
	if c.VenvDir == "" {
		c.VenvDir = ".venv"
	}
	if c.SetupScript == "" {
		c.SetupScript = "setup.sh"
	}
	if c.Requirements == "" {
		c.Requirements = "requirements.txt"
	}
	if c.CacheTTLDays == 0 {
		c.CacheTTLDays = 30
	}
	if c.Python.Version == "" {
		c.Python.Version = "3"
	}
	if len(c.Python.InstallRoots) == 0 {
		c.Python.InstallRoots = []string{
			"~/.pyenv/versions",
			"~/.local/share/uv/python",
			"~/.local/bin",
			"/usr/local/bin",
			"/opt/homebrew/bin",
		}
	}
}

func (c *Config) validate() error {
	if filepath.IsAbs(c.VenvDir) {
		return fmt.Errorf("config.Load: %w: venv_dir는 프로젝트 상대 경로여야 합니다: %s", ErrConfig, c.VenvDir)
	}
	if c.Python.Version != "" && (c.Python.Version[0] < '0' || c.Python.Version[0] > '9') {
		return fmt.Errorf("config.Load: %w: python.version 형식 오류: %s", ErrConfig, c.Python.Version)
	}
	if c.Python.Executable != "" && !filepath.IsAbs(c.Python.Executable) {
		return fmt.Errorf("config.Load: %w: python.executable은 절대 경로여야 합니다: %s", ErrConfig, c.Python.Executable)
	}
	return nil
}
