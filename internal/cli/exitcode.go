package cli

import (
	"errors"
)

// ExitCode는 pyctx의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitNoEnv는 가상환경 없음이다.
	ExitNoEnv ExitCode = 2
	// ExitScriptMissing은 setup 스크립트 없음이다.
	ExitScriptMissing ExitCode = 3
	// ExitManifestMissing은 의존성 manifest 없음이다.
	ExitManifestMissing ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrNoEnv):
		return ExitNoEnv
	case errors.Is(err, ErrScriptMissing):
		return ExitScriptMissing
	case errors.Is(err, ErrManifestMissing):
		return ExitManifestMissing
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
