package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/delver/types"
)

// statusText returns the left and right halves of the status bar.
func (m Model) statusText() (left, right string) {
	st := m.engine.Status()
	left = fmt.Sprintf(" HP: %d/%d | Turn %d", st.HP, st.MaxHP, st.Turn)
	if st.Mode == types.ModeDead {
		left += " | DEAD"
	}
	right = fmt.Sprintf("seed %d ", m.engine.Seed)
	return left, right
}

// renderStatusBar produces a full-width inverted status line showing hit
// points, turn count and the dungeon seed.
func (m Model) renderStatusBar() string {
	left, right := m.statusText()

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + strings.Repeat(" ", gap) + right

	style := styleStatusBar
	if m.engine.State.Mode == types.ModeDead {
		style = styleStatusDead
	}
	return style.Width(m.width).Render(bar)
}
