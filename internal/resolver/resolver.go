// Package resolver locates a usable Python interpreter. It exists to work
// around launcher stubs that intercept the bare command name (for example the
// app-store python shim): a real interpreter found under a known install root
// takes precedence over whatever the launcher would have served.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyctx/internal/cache"
	"github.com/hbjs97/pyctx/internal/config"
)

// ErrInterpreterNotFound는 어떤 단계에서도 인터프리터를 찾지 못했을 때 반환된다.
// 호출자는 이를 치명적 오류가 아닌 진단 정보로 다뤄야 한다 — 세션은 계속 사용
// 가능해야 한다.
var ErrInterpreterNotFound = errors.New("사용 가능한 python 인터프리터 없음")

// Result는 Resolver의 판정 결과다.
type Result struct {
	Path   string
	Reason string // "explicit", "cache", "version_match", "first_found", "path_lookup"
}

// Resolver는 4단계 인터프리터 판정 파이프라인이다:
// 명시 설정 → 캐시 → 설치 루트 재귀 탐색 → PATH 조회.
type Resolver struct {
	config *config.Config
	cache  *cache.Cache
	home   string

	// lookPath는 테스트 주입용이다. 비어있으면 exec.LookPath를 사용한다.
	lookPath func(name string) (string, error)
}

// New는 새 Resolver를 생성한다.
func New(cfg *config.Config, c *cache.Cache, home string) *Resolver {
	return &Resolver{config: cfg, cache: c, home: home, lookPath: exec.LookPath}
}

// WithLookPath는 PATH 조회 함수를 교체한다. 테스트용.
func (r *Resolver) WithLookPath(fn func(string) (string, error)) *Resolver {
	r.lookPath = fn
	return r
}

// CacheKey는 이 판정의 캐시 키다.
func (r *Resolver) CacheKey() string {
	return "python" + r.config.Python.Version
}

// Resolve는 파이프라인으로 인터프리터를 판정한다.
func (r *Resolver) Resolve(ctx context.Context) (*Result, error) {
	// Step 1: 명시 설정
	if exe := r.config.Python.Executable; exe != "" {
		if !isExecutable(exe) {
			return nil, fmt.Errorf("resolver.Resolve: python.executable 실행 불가: %s: %w", exe, ErrInterpreterNotFound)
		}
		return &Result{Path: exe, Reason: "explicit"}, nil
	}

	// Step 2: 캐시 조회. 캐시된 경로가 사라졌으면 miss로 처리한다.
	configHash := r.config.ConfigHash()
	if entry, ok := r.cache.Lookup(r.CacheKey(), configHash, r.config.CacheTTLDays); ok {
		if isExecutable(entry.Path) {
			return &Result{Path: entry.Path, Reason: "cache"}, nil
		}
		r.cache.Invalidate(r.CacheKey())
	}

	// Step 3: 설치 루트 재귀 탐색
	candidates := r.searchInstallRoots(ctx)
	if len(candidates) > 0 {
		for _, c := range candidates {
			if pathIndicatesVersion(c, r.config.Python.Version) {
				return &Result{Path: c, Reason: "version_match"}, nil
			}
		}
		return &Result{Path: candidates[0], Reason: "first_found"}, nil
	}

	// Step 4: PATH 조회
	for _, name := range []string{"python" + r.config.Python.Version, "python"} {
		if p, err := r.lookPath(name); err == nil {
			return &Result{Path: p, Reason: "path_lookup"}, nil
		}
	}

	return nil, fmt.Errorf("resolver.Resolve: %w", ErrInterpreterNotFound)
}

// Candidates는 설치 루트와 PATH에서 찾은 인터프리터 후보 전체를 반환한다.
// setup 폼의 선택지 구성에 사용한다.
func (r *Resolver) Candidates(ctx context.Context) []string {
	candidates := r.searchInstallRoots(ctx)
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c] = true
	}
	for _, name := range []string{"python" + r.config.Python.Version, "python"} {
		if p, err := r.lookPath(name); err == nil && !seen[p] {
			candidates = append(candidates, p)
			seen[p] = true
		}
	}
	return candidates
}

// searchInstallRoots는 설정된 설치 루트를 재귀 탐색하여 python 실행 파일
// 후보를 수집한다. 루트 순서와 디렉토리 사전순으로 결정적이다.
func (r *Resolver) searchInstallRoots(ctx context.Context) []string {
	var candidates []string
	for _, root := range r.config.ResolvedInstallRoots(r.home) {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // 접근 불가 항목은 건너뛴다
			}
			if ctx.Err() != nil {
				return filepath.SkipAll
			}
			if d.IsDir() || !isInterpreterName(d.Name()) {
				return nil
			}
			if isExecutable(path) {
				candidates = append(candidates, path)
			}
			return nil
		})
	}
	return candidates
}

// isInterpreterName은 파일 이름이 python 인터프리터 이름인지 확인한다.
// python, python3, python3.12 형식만 허용하고 python-config 등은 제외한다.
func isInterpreterName(name string) bool {
	if !strings.HasPrefix(name, "python") {
		return false
	}
	rest := name[len("python"):]
	if rest == "" {
		return true
	}
	for _, r := range rest {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// pathIndicatesVersion은 후보 경로가 요청된 메이저 버전을 나타내는지 판정한다.
// 파일 이름의 버전 접미사(python3) 또는 경로 중간의 버전 디렉토리
// (.pyenv/versions/3.12.1/bin/python)를 인정한다.
func pathIndicatesVersion(path, major string) bool {
	if major == "" {
		return false
	}
	base := filepath.Base(path)
	if strings.HasPrefix(base, "python"+major) {
		return true
	}
	for _, elem := range strings.Split(filepath.Dir(path), string(filepath.Separator)) {
		if elem == major || strings.HasPrefix(elem, major+".") {
			return true
		}
	}
	return false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
