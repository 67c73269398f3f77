// Package venv locates and creates Python virtual environments.
package venv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyctx/internal/cmdexec"
)

// ErrNotFound는 프로젝트에 가상환경이 없을 때 반환된다.
var ErrNotFound = errors.New("가상환경 없음")

// Env는 감지된 가상환경이다.
type Env struct {
	// Root는 가상환경 디렉토리의 절대 경로다.
	Root string
	// BinDir는 실행 파일 디렉토리다 (<root>/bin).
	BinDir string
	// ActivateScript는 활성화 진입점 경로다 (<root>/bin/activate).
	ActivateScript string
	// Python은 가상환경 내부 인터프리터 경로다.
	Python string
}

// Detect는 프로젝트 디렉토리에서 가상환경을 찾는다.
// 활성화 진입점(<venvDir>/bin/activate)이 존재해야 유효한 환경으로 본다.
func Detect(projectDir, venvDir string) (*Env, error) {
	root := filepath.Join(projectDir, venvDir)
	binDir := filepath.Join(root, "bin")
	activate := filepath.Join(binDir, "activate")

	info, err := os.Stat(activate)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("venv.Detect: %w: %s", ErrNotFound, activate)
	}

	return &Env{
		Root:           root,
		BinDir:         binDir,
		ActivateScript: activate,
		Python:         filepath.Join(binDir, "python"),
	}, nil
}

// Create는 인터프리터의 venv 모듈로 가상환경을 생성한다.
func Create(ctx context.Context, cmd cmdexec.Commander, python, dir string) error {
	out, err := cmd.Run(ctx, python, "-m", "venv", dir)
	if err != nil {
		return fmt.Errorf("venv.Create: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
