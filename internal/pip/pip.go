// Package pip installs declared dependencies through the pip module of a
// resolved interpreter, via Commander.
package pip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyctx/internal/cmdexec"
)

// ErrManifestMissing은 의존성 manifest 파일이 없을 때 반환된다.
var ErrManifestMissing = errors.New("의존성 manifest 없음")

// Adapter는 pip을 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 pip Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// Install은 manifest의 의존성을 설치한다. manifest가 없으면 pip을 호출하지
// 않고 ErrManifestMissing을 반환한다. 설치 실패는 pip 출력과 함께 그대로
// 드러낸다 — 조용히 삼키지 않는다.
func (a *Adapter) Install(ctx context.Context, python, projectDir, manifest string) error {
	manifestPath := filepath.Join(projectDir, manifest)
	if _, err := os.Stat(manifestPath); err != nil {
		return fmt.Errorf("pip.Install: %w: %s", ErrManifestMissing, manifestPath)
	}

	out, err := a.cmd.Run(ctx, python, "-m", "pip", "install", "-r", manifestPath)
	if err != nil {
		return fmt.Errorf("pip.Install: 설치 실패: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Version은 pip 버전 문자열을 반환한다. 진단용이다.
func (a *Adapter) Version(ctx context.Context, python string) (string, error) {
	out, err := a.cmd.Run(ctx, python, "-m", "pip", "--version")
	if err != nil {
		return "", fmt.Errorf("pip.Version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
