package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	"github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/picker"
)

// PickerKeyHints is the key help line under the picker.
const PickerKeyHints = "[tab] Pane  [↑↓] Move  [enter] Select  [x] Clear  [r] Rename  [c] Confirm  [q] Quit"

// Picker layout constants.
const (
	pickerDefaultWidth  = 80
	pickerDefaultHeight = 24
	pickerMinListHeight = 6
	popupWidth          = 44
)

// Focus identifies the picker pane receiving keys.
type Focus int

// Picker panes.
const (
	FocusIcons Focus = iota
	FocusSlots
	FocusCandidates
)

// PickerConfig holds display settings for the picker.
type PickerConfig struct {
	// Width caps the screen width. 0 uses the terminal width.
	Width int
	// ShowKeyHints shows PickerKeyHints under the screen.
	ShowKeyHints bool
}

// PickerModel is the Bubble Tea model for the belief picker screen.
// It renders a picker.Session and forwards key presses to it.
type PickerModel struct {
	ctx     context.Context //nolint:containedctx // Confirm runs inside Update
	session *picker.Session
	cfg     PickerConfig
	styles  *PickerStyles
	bar     *ProgressBar

	focus      Focus
	iconCursor int
	slotCursor int
	candCursor int

	renaming bool
	input    textinput.Model
	inputErr error

	status   error
	width    int
	height   int
	quitting bool
}

// NewPickerModel creates a picker over session. ctx is passed to the
// session when the selection is confirmed.
func NewPickerModel(ctx context.Context, session *picker.Session, cfg PickerConfig) *PickerModel {
	input := textinput.New()
	input.CharLimit = constants.MaxReligionNameLength
	input.Prompt = "> "
	input.Width = popupWidth - 8

	m := &PickerModel{
		ctx:     ctx,
		session: session,
		cfg:     cfg,
		styles:  NewPickerStyles(),
		bar:     NewProgressBar(20),
		focus:   FocusSlots,
		input:   input,
		width:   pickerDefaultWidth,
		height:  pickerDefaultHeight,
	}
	if session.Mode() == picker.ModeFound && session.ReligionName() == "" {
		m.focus = FocusIcons
	}
	m.iconCursor = m.firstAvailableIcon()
	return m
}

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user confirmed the selection.
func (m *PickerModel) Confirmed() bool {
	return m.session.Confirmed()
}

// Err returns the last error raised by a picker action, if any.
func (m *PickerModel) Err() error {
	return m.status
}

// Focus returns the pane receiving keys.
func (m *PickerModel) Focus() Focus {
	return m.focus
}

// Renaming reports whether the rename popup is open.
func (m *PickerModel) Renaming() bool {
	return m.renaming
}

// Session returns the underlying session.
func (m *PickerModel) Session() *picker.Session {
	return m.session
}

// Update handles messages and returns the updated model and any commands.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *PickerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.cycleFocus(1)
	case "shift+tab":
		m.cycleFocus(-1)
	case "up", "k", "left", "h":
		m.moveCursor(-1)
	case "down", "j", "right", "l":
		m.moveCursor(1)
	case "enter", " ":
		m.activate()
	case "x", "backspace", "delete":
		if m.focus == FocusSlots {
			m.status = m.session.ClearSlot(m.slotCursor)
		}
	case "r":
		m.openRename()
	case "c":
		return m.confirm()
	}
	return m, nil
}

func (m *PickerModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.closeRename()
		return m, nil
	case "enter":
		name := m.input.Value()
		if err := m.session.ValidateName(name); err != nil {
			m.inputErr = err
			return m, nil
		}
		m.session.Rename(name)
		m.closeRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inputErr = m.session.ValidateName(m.input.Value())
	return m, cmd
}

// panes returns the panes that can take focus, in tab order.
func (m *PickerModel) panes() []Focus {
	if m.session.Mode() == picker.ModeFound {
		return []Focus{FocusIcons, FocusSlots, FocusCandidates}
	}
	return []Focus{FocusSlots, FocusCandidates}
}

func (m *PickerModel) cycleFocus(step int) {
	panes := m.panes()
	at := 0
	for i, p := range panes {
		if p == m.focus {
			at = i
		}
	}
	m.focus = panes[(at+step+len(panes))%len(panes)]
	if m.focus == FocusCandidates {
		m.candCursor = 0
	}
}

func (m *PickerModel) moveCursor(step int) {
	switch m.focus {
	case FocusIcons:
		m.iconCursor = clampCursor(m.iconCursor+step, len(m.session.ReligionIcons()))
	case FocusSlots:
		m.slotCursor = clampCursor(m.slotCursor+step, len(m.session.Slots()))
	case FocusCandidates:
		m.candCursor = clampCursor(m.candCursor+step, len(m.session.Candidates()))
	}
}

// activate performs the enter action of the focused pane.
func (m *PickerModel) activate() {
	m.status = nil
	switch m.focus {
	case FocusIcons:
		icons := m.session.ReligionIcons()
		if m.iconCursor >= len(icons) {
			return
		}
		if err := m.session.SelectIcon(icons[m.iconCursor].Name); err != nil {
			m.status = err
			return
		}
		m.focus = FocusSlots
	case FocusSlots:
		if len(m.session.Slots()) == 0 {
			return
		}
		if err := m.session.SelectSlot(m.slotCursor); err != nil {
			m.status = err
			return
		}
		m.focus = FocusCandidates
		m.candCursor = 0
	case FocusCandidates:
		candidates := m.session.Candidates()
		if m.candCursor >= len(candidates) {
			return
		}
		if err := m.session.Choose(candidates[m.candCursor]); err != nil {
			m.status = err
			return
		}
		m.focus = FocusSlots
		m.advanceToEmptySlot()
	}
}

// advanceToEmptySlot moves the slot cursor to the next unfilled slot and
// makes it active, wrapping around. It stays put when every slot is filled.
func (m *PickerModel) advanceToEmptySlot() {
	slots := m.session.Slots()
	for i := 1; i <= len(slots); i++ {
		next := (m.slotCursor + i) % len(slots)
		if !slots[next].Filled {
			m.slotCursor = next
			_ = m.session.SelectSlot(next)
			return
		}
	}
}

func (m *PickerModel) openRename() {
	if !m.session.CanRename() {
		return
	}
	m.renaming = true
	m.inputErr = nil
	m.input.SetValue(m.session.DisplayName())
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *PickerModel) closeRename() {
	m.renaming = false
	m.inputErr = nil
	m.input.Blur()
}

func (m *PickerModel) confirm() (tea.Model, tea.Cmd) {
	if !m.session.CanConfirm() {
		m.status = errors.ErrSelectionIncomplete
		return m, nil
	}
	if err := m.session.Confirm(m.ctx); err != nil {
		m.status = err
		return m, nil
	}
	m.status = nil
	m.quitting = true
	return m, tea.Quit
}

func (m *PickerModel) firstAvailableIcon() int {
	for i, icon := range m.session.ReligionIcons() {
		if icon.Available {
			return i
		}
	}
	return 0
}

// View renders the current state to a string.
func (m *PickerModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.screenWidth()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title()))
	b.WriteString("\n\n")

	if icons := m.renderIcons(width); icons != "" {
		b.WriteString(icons)
		b.WriteString("\n\n")
	}

	listHeight := max(m.height-14, pickerMinListHeight)
	leftWidth := width / 2
	left := Pane{Title: "Beliefs", Content: m.renderSlots(), Focused: m.focus == FocusSlots}
	right := Pane{Title: m.candidatesTitle(), Content: m.renderCandidates(), Focused: m.focus == FocusCandidates}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(leftWidth, listHeight),
		right.Render(width-leftWidth, listHeight),
	))
	b.WriteString("\n")

	if desc := m.highlightedEffects(); desc != "" {
		b.WriteString(m.styles.Description.Render(padRightANSI(desc, width)))
	}
	b.WriteString("\n")

	filled, total := m.session.Progress()
	b.WriteString(m.bar.RenderCount(filled, total))
	b.WriteString("\n")
	b.WriteString(m.renderButton())
	b.WriteString("\n")

	if m.status != nil {
		b.WriteString(m.styles.Error.Render(errors.UserMessage(m.status)))
		b.WriteString("\n")
	}
	if m.cfg.ShowKeyHints {
		b.WriteString(m.styles.Hint.Render(PickerKeyHints))
	}

	screen := b.String()
	if m.renaming {
		return RenderPopup(screen, m.renderRenamePopup(), m.styles.Popup, width, m.height)
	}
	return screen
}

func (m *PickerModel) screenWidth() int {
	if m.cfg.Width > 0 && m.cfg.Width < m.width {
		return m.cfg.Width
	}
	return m.width
}

func (m *PickerModel) title() string {
	civ := m.session.Civilization()
	switch m.session.Mode() {
	case picker.ModeFound:
		return "Found a religion for " + civ
	case picker.ModeEnhance:
		return fmt.Sprintf("Enhance %s for %s", m.session.DisplayName(), civ)
	default:
		return "Adopt a pantheon for " + civ
	}
}

func (m *PickerModel) renderIcons(width int) string {
	icons := m.session.ReligionIcons()
	if len(icons) == 0 {
		return ""
	}
	cells := make([]string, 0, len(icons))
	for i, icon := range icons {
		style := m.styles.IconAvailable
		switch {
		case icon.Selected:
			style = m.styles.IconSelected
		case !icon.Available:
			style = m.styles.IconDisabled
		}
		label := icon.Name
		if m.focus == FocusIcons && i == m.iconCursor {
			label = "▸" + label
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(cells, " "))
}

func (m *PickerModel) renderSlots() string {
	var lines []string
	for _, b := range m.session.ExistingBeliefs() {
		lines = append(lines, m.styles.RowLocked.Render("  ✓ "+b.Name))
	}
	for _, slot := range m.session.Slots() {
		marker := "  "
		if m.focus == FocusSlots && slot.Index == m.slotCursor {
			marker = "▸ "
		}
		tag := lipgloss.NewStyle().Foreground(CategoryColor(slot.Category)).Render(categoryTag(slot.Category))
		style := m.styles.Row
		if !slot.Filled {
			style = m.styles.RowEmpty
		}
		label := style.Render(slot.Label())
		if slot.Active {
			label = m.styles.RowActive.Render(slot.Label())
		}
		lines = append(lines, marker+tag+" "+label)
	}
	return strings.Join(lines, "\n")
}

func (m *PickerModel) candidatesTitle() string {
	idx, ok := m.session.ActiveSlot()
	if !ok {
		return "Choices"
	}
	return picker.CategoryTitle(m.session.Slots()[idx].Category) + " beliefs"
}

func (m *PickerModel) renderCandidates() string {
	if _, ok := m.session.ActiveSlot(); !ok {
		return m.styles.Hint.Render("Select a slot to see its beliefs.")
	}
	candidates := m.session.Candidates()
	if len(candidates) == 0 {
		return m.styles.Hint.Render("No beliefs left in this category.")
	}
	lines := make([]string, 0, len(candidates))
	for i, b := range candidates {
		if m.focus == FocusCandidates && i == m.candCursor {
			lines = append(lines, m.styles.RowCursor.Render("▸ "+b.Name))
			continue
		}
		lines = append(lines, m.styles.Row.Render("  "+b.Name))
	}
	return strings.Join(lines, "\n")
}

// highlightedEffects describes the belief under the cursor.
func (m *PickerModel) highlightedEffects() string {
	var b domain.Belief
	switch m.focus {
	case FocusCandidates:
		candidates := m.session.Candidates()
		if m.candCursor >= len(candidates) {
			return ""
		}
		b = candidates[m.candCursor]
	case FocusSlots:
		slots := m.session.Slots()
		if m.slotCursor >= len(slots) || !slots[m.slotCursor].Filled {
			return ""
		}
		b = slots[m.slotCursor].Belief
	default:
		return ""
	}
	return b.Name + ": " + b.Effects()
}

func (m *PickerModel) renderButton() string {
	label := m.session.ConfirmLabel()
	if m.session.CanConfirm() {
		return m.styles.ButtonEnabled.Render(label)
	}
	return m.styles.Button.Render(label)
}

func (m *PickerModel) renderRenamePopup() string {
	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render("Choose a name for your religion"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.inputErr != nil {
		b.WriteString(m.styles.Error.Render(errors.UserMessage(m.inputErr)))
	} else {
		b.WriteString(m.styles.Hint.Render("[enter] OK  [esc] Cancel"))
	}
	return lipgloss.NewStyle().Width(popupWidth - 6).Render(b.String())
}

// categoryTag is the short slot prefix, e.g. "[Founder]".
func categoryTag(c domain.BeliefCategory) string {
	return "[" + picker.CategoryTitle(c) + "]"
}

// clampCursor keeps a cursor within [0, n).
func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// RunPicker runs the picker full screen until the user confirms or quits.
// It returns errors.ErrPickerCanceled when the user leaves without confirming.
func RunPicker(ctx context.Context, session *picker.Session, cfg PickerConfig) error {
	CheckNoColor()

	model := NewPickerModel(ctx, session, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if !model.Confirmed() {
		return errors.ErrPickerCanceled
	}
	return nil
}
