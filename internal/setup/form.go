package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunSetupForm은 최초 설정 폼을 실행한다.
func (h *HuhFormRunner) RunSetupForm(defaults *Input, candidates []string) (*Input, error) {
	input := &Input{}
	if defaults != nil {
		*input = *defaults
	}

	dirValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("가상환경 디렉토리를 입력하세요")
		}
		if strings.HasPrefix(s, "/") {
			return fmt.Errorf("프로젝트 상대 경로만 사용 가능합니다")
		}
		return nil
	}

	fields := []huh.Field{
		huh.NewInput().Title("가상환경 디렉토리").Value(&input.VenvDir).Validate(dirValidate),
		huh.NewInput().Title("의존성 manifest").Value(&input.Requirements).Validate(huh.ValidateNotEmpty()),
	}

	if len(candidates) > 0 {
		options := make([]huh.Option[string], 0, len(candidates)+1)
		options = append(options, huh.NewOption("자동 판정", ""))
		for _, c := range candidates {
			options = append(options, huh.NewOption(c, c))
		}
		fields = append(fields,
			huh.NewSelect[string]().Title("python 인터프리터").Options(options...).Value(&input.PythonPath))
	} else {
		fields = append(fields,
			huh.NewInput().Title("python 인터프리터 경로 (비우면 자동 판정)").Value(&input.PythonPath))
	}

	fields = append(fields,
		huh.NewConfirm().Title("셸 rc 파일에 자동 활성화 hook을 설치할까요?").Value(&input.InstallHook))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunSetupForm: %w", err)
	}

	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirmed, nil
}
