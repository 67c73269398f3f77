package shell

// Deactivate는 가상환경 비활성화를 위한 shell unset 명령을 생성한다.
func Deactivate(shellType string) string {
	switch shellType {
	case "fish":
		return "set -e VIRTUAL_ENV 2>/dev/null\n"
	default:
		return "unset VIRTUAL_ENV\n"
	}
}

// HookSnippet는 셸 시작 시 자동 활성화와 세션 명령 함수를 설치하는
// 스니펫을 반환한다. pyctx-setup은 setup 완료 후 활성화를 다시 평가한다.
// 명령 치환은 stdout만 캡처한다 — stderr의 상태 메시지는 터미널에 그대로
// 보여야 하므로 리다이렉트하지 않는다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# pyctx shell integration (zsh)
eval "$(pyctx activate --shell zsh)"
pyctx-activate() {
  eval "$(command pyctx activate --shell zsh)"
}
pyctx-setup() {
  command pyctx setup "$@" && eval "$(command pyctx activate --shell zsh)"
}
pyctx-install() {
  command pyctx install "$@"
}
`
	case "bash":
		return `# pyctx shell integration (bash)
eval "$(pyctx activate --shell bash)"
pyctx-activate() {
  eval "$(command pyctx activate --shell bash)"
}
pyctx-setup() {
  command pyctx setup "$@" && eval "$(command pyctx activate --shell bash)"
}
pyctx-install() {
  command pyctx install "$@"
}
`
	case "fish":
		return `# pyctx shell integration (fish)
eval (pyctx activate --shell fish)
function pyctx-activate
  eval (command pyctx activate --shell fish)
end
function pyctx-setup
  command pyctx setup $argv; and eval (command pyctx activate --shell fish)
end
function pyctx-install
  command pyctx install $argv
end
`
	default:
		return ""
	}
}
