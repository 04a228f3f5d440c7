package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a bordered box with its title set into the top border.
type Pane struct {
	Title   string
	Content string
	Focused bool
}

// Render draws the pane at exactly width x height cells. Content lines past
// the inner height are cut, long lines are truncated.
func (p Pane) Render(width, height int) string {
	width = max(width, 6)
	height = max(height, 3)

	border := ColorMuted
	prefix := "  "
	if p.Focused {
		border = ColorPrimary
		prefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(prefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth-1 {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-3), "…") + " "
	}
	dashes := max(innerWidth-ansi.StringWidth(titleText), 0)
	leftDash := min(1, dashes)

	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes-leftDash)+"╮")

	v := borderStyle.Render("│")
	lines := splitToLines(p.Content, height-2)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range lines {
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(rows, "\n")
}

// RenderPopup centers popup, wrapped in style, over base on a width x height canvas.
func RenderPopup(base, popup string, style lipgloss.Style, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(base, width, height)
	card := style.Render(popup)
	cardLines := splitToLines(card, 0)
	cardWidth := maxLineWidth(cardLines)
	if cardWidth <= 0 {
		return canvas
	}
	x := max((width-cardWidth)/2, 0)
	y := max((height-len(cardLines))/2, 0)
	return overlayAt(canvas, card, x, y, width, height)
}

// overlayAt writes overlay onto base with its top-left corner at column x, row y.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := padRightANSI(ansi.Truncate(target, x, ""), x)
		middle := padRightANSI(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+overlayWidth, "")
		baseLines[row] = ansi.Truncate(left+middle+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

// fitCanvas pads or cuts s to exactly width x height cells.
func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// splitToLines splits s into lines, padded or cut to height when height > 0.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

// padRightANSI truncates or pads s to exactly width display columns,
// ignoring escape sequences.
func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
