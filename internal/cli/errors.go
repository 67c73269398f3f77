package cli

import (
	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/pip"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/hbjs97/pyctx/internal/venv"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNoEnv는 프로젝트에 가상환경이 없을 때의 sentinel error다.
	ErrNoEnv = venv.ErrNotFound
	// ErrScriptMissing은 setup 스크립트가 없을 때의 sentinel error다.
	ErrScriptMissing = setup.ErrScriptMissing
	// ErrManifestMissing은 의존성 manifest가 없을 때의 sentinel error다.
	ErrManifestMissing = pip.ErrManifestMissing
	// ErrInterpreterNotFound는 인터프리터 판정 실패의 sentinel error다.
	ErrInterpreterNotFound = resolver.ErrInterpreterNotFound
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
