package setup

import (
	"errors"
)

// ErrScriptMissing은 프로젝트 setup 스크립트가 없을 때 반환된다.
var ErrScriptMissing = errors.New("setup 스크립트 없음")

// Input은 최초 설정 폼의 사용자 입력 값이다.
type Input struct {
	VenvDir      string
	Requirements string
	// PythonPath는 선택된 인터프리터 경로다. 빈 값이면 자동 판정에 맡긴다.
	PythonPath string
	// InstallHook은 셸 rc 파일에 hook을 설치할지 여부다.
	InstallHook bool
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunSetupForm은 최초 설정 폼을 실행한다. candidates는 감지된
	// 인터프리터 목록이며 비어있으면 직접 입력으로 fallback한다.
	RunSetupForm(defaults *Input, candidates []string) (*Input, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
