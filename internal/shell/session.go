package shell

import (
	"fmt"
	"strings"
)

// PathListSeparator는 PATH 변수의 엔트리 구분자다.
const PathListSeparator = ":"

// Session은 호출한 셸 세션의 가변 환경 상태 모델이다.
// 전역 환경을 직접 변경하는 대신 Session을 변경한 뒤 Render로 셸 코드를
// 내보낸다. 실제 셸 없이도 활성화 동작을 테스트할 수 있다.
type Session struct {
	path      []string
	varOrder  []string
	vars      map[string]string
	aliases   []alias
	pathDirty bool
}

type alias struct {
	name   string
	target string
}

// NewSession은 PATH 변수 값으로부터 세션 상태를 구성한다.
func NewSession(pathVar string) *Session {
	s := &Session{vars: make(map[string]string)}
	for _, entry := range strings.Split(pathVar, PathListSeparator) {
		if entry != "" {
			s.path = append(s.path, entry)
		}
	}
	return s
}

// ContainsPath는 디렉토리가 이미 PATH에 있는지 확인한다.
func (s *Session) ContainsPath(dir string) bool {
	for _, entry := range s.path {
		if entry == dir {
			return true
		}
	}
	return false
}

// PrependPath는 디렉토리를 PATH 선두에 추가한다.
// 이미 존재하면 아무것도 하지 않는다 — 활성화를 반복해도 안전하다.
func (s *Session) PrependPath(dir string) bool {
	if s.ContainsPath(dir) {
		return false
	}
	s.path = append([]string{dir}, s.path...)
	s.pathDirty = true
	return true
}

// Set은 세션 환경변수를 설정한다. 같은 키를 다시 설정하면 값만 갱신된다.
func (s *Session) Set(key, value string) {
	if _, ok := s.vars[key]; !ok {
		s.varOrder = append(s.varOrder, key)
	}
	s.vars[key] = value
}

// Alias는 세션에 정의할 명령 별칭을 추가한다.
// 별칭 호출의 모든 인자는 target 실행 파일로 전달된다.
func (s *Session) Alias(name, target string) {
	for i, a := range s.aliases {
		if a.name == name {
			s.aliases[i].target = target
			return
		}
	}
	s.aliases = append(s.aliases, alias{name: name, target: target})
}

// PathVar는 현재 PATH 값을 반환한다.
func (s *Session) PathVar() string {
	return strings.Join(s.path, PathListSeparator)
}

// Dirty는 Render가 내보낼 변경 사항이 있는지 반환한다.
func (s *Session) Dirty() bool {
	return s.pathDirty || len(s.varOrder) > 0 || len(s.aliases) > 0
}

// Render는 세션 변경 사항을 셸 코드로 직렬화한다.
// 변경되지 않은 항목은 내보내지 않으므로 두 번 eval해도 결과는 같다.
// 값은 단일 인용부호로 감싼다 — 경로에 포함된 $, 백틱이 eval 시점에
// 확장되면 안 된다.
func (s *Session) Render(shellType string) string {
	var sb strings.Builder

	if s.pathDirty {
		switch shellType {
		case "fish":
			fmt.Fprintf(&sb, "set -gx PATH %s\n", fishQuote(s.PathVar()))
		default: // bash, zsh, sh
			fmt.Fprintf(&sb, "export PATH=%s\n", posixQuote(s.PathVar()))
		}
	}

	for _, key := range s.varOrder {
		switch shellType {
		case "fish":
			fmt.Fprintf(&sb, "set -gx %s %s\n", key, fishQuote(s.vars[key]))
		default:
			fmt.Fprintf(&sb, "export %s=%s\n", key, posixQuote(s.vars[key]))
		}
	}

	for _, a := range s.aliases {
		switch shellType {
		case "fish":
			fmt.Fprintf(&sb, "alias %s %s\n", a.name, fishQuote(a.target))
		default:
			fmt.Fprintf(&sb, "alias %s=%s\n", a.name, posixQuote(a.target))
		}
	}

	return sb.String()
}

// posixQuote는 값을 POSIX 단일 인용 문자열로 감싼다.
// 단일 인용부호 안에서는 어떤 문자도 특수하지 않으며, 값 내부의 '는
// '\''로 이어붙인다.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote는 값을 fish 단일 인용 문자열로 감싼다.
// fish의 단일 인용부호 안에서는 \와 '만 이스케이프가 필요하다.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}
