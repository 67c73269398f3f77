package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// 상태 메시지 3색 체계: 성공(녹색), 누락(적색), 힌트(황색).
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func (a *App) successf(format string, args ...any) {
	fmt.Fprintln(a.stderr(), successStyle.Render(fmt.Sprintf(format, args...)))
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintln(a.stderr(), errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (a *App) hintf(format string, args ...any) {
	fmt.Fprintln(a.stderr(), hintStyle.Render(fmt.Sprintf(format, args...)))
}
