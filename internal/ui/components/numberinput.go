package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/roadready/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for entering a bounded number,
// such as a practice test number.
type NumberInput struct {
	Model textinput.Model
	Min   int
	Max   int
}

// NewNumberInput creates a styled numeric input accepting values in [min, max].
func NewNumberInput(placeholder string, min, max int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Focus()

	return NumberInput{
		Model: ti,
		Min:   min,
		Max:   max,
	}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, dropping non-digit keystrokes.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input with its valid range.
func (n NumberInput) View() string {
	rangeHint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  (" + strconv.Itoa(n.Min) + "-" + strconv.Itoa(n.Max) + ")")
	return n.Model.View() + rangeHint
}

// Value returns the entered number, or false if it is empty or out of range.
func (n NumberInput) Value() (int, bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil || v < n.Min || v > n.Max {
		return 0, false
	}
	return v, true
}
