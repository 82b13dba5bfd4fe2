package ui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sayhalo/internal/models"
	"sayhalo/internal/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsField int

const (
	fieldModel settingsField = iota
	fieldTemperature
	fieldSystem
	fieldCount
)

var fieldLabels = [fieldCount]string{"Model", "Temperature", "System Instruction"}

type settingsAction int

const (
	settingsNone settingsAction = iota
	settingsSave
	settingsCancel
)

var ErrTemperature = errors.New("temperature must be a number")

// SettingsPanel edits a copy of the session settings. Nothing is applied
// until the root model accepts the values returned by Values.
type SettingsPanel struct {
	Inputs []textinput.Model
	Focus  settingsField
	Err    string
}

func NewSettingsPanel() SettingsPanel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		inputs[i] = ti
	}
	inputs[fieldModel].Placeholder = models.DefaultModelID
	inputs[fieldTemperature].Placeholder = "0.0 - 2.0"
	inputs[fieldTemperature].CharLimit = 8
	inputs[fieldSystem].Placeholder = models.DefaultSystemInstruction
	return SettingsPanel{Inputs: inputs}
}

// Open seeds every field from s and focuses the model field.
func (p *SettingsPanel) Open(s models.Settings) tea.Cmd {
	p.Inputs[fieldModel].SetValue(s.Model)
	p.Inputs[fieldTemperature].SetValue(strconv.FormatFloat(s.Temperature, 'f', -1, 64))
	p.Inputs[fieldSystem].SetValue(s.SystemInstruction)
	for i := range p.Inputs {
		p.Inputs[i].CursorEnd()
	}
	p.Err = ""
	return p.focus(fieldModel)
}

func (p *SettingsPanel) focus(f settingsField) tea.Cmd {
	p.Focus = f
	var cmd tea.Cmd
	for i := range p.Inputs {
		if settingsField(i) == f {
			cmd = p.Inputs[i].Focus()
			continue
		}
		p.Inputs[i].Blur()
	}
	return cmd
}

func (p *SettingsPanel) SetWidth(w int) {
	for i := range p.Inputs {
		p.Inputs[i].Width = w
	}
}

// Values parses the fields into a Settings value.
func (p *SettingsPanel) Values() (models.Settings, error) {
	raw := strings.TrimSpace(p.Inputs[fieldTemperature].Value())
	temp, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(temp) || math.IsInf(temp, 0) {
		return models.Settings{}, fmt.Errorf("%w, got %q", ErrTemperature, raw)
	}
	if temp < models.MinTemperature || temp > models.MaxTemperature {
		return models.Settings{}, fmt.Errorf("temperature must be between %g and %g", models.MinTemperature, models.MaxTemperature)
	}
	return models.Settings{
		Model:             strings.TrimSpace(p.Inputs[fieldModel].Value()),
		Temperature:       temp,
		SystemInstruction: p.Inputs[fieldSystem].Value(),
	}, nil
}

// cycleModel steps the model field through the catalog. A free-text value
// that is not in the catalog starts from the first entry.
func (p *SettingsPanel) cycleModel(delta int) {
	n := len(models.AvailableModels)
	if n == 0 {
		return
	}
	_, idx, ok := models.FindModelByID(strings.TrimSpace(p.Inputs[fieldModel].Value()))
	switch {
	case !ok && delta > 0:
		idx = 0
	case !ok:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}
	p.Inputs[fieldModel].SetValue(models.AvailableModels[idx].ID)
	p.Inputs[fieldModel].CursorEnd()
}

func (p *SettingsPanel) Update(msg tea.KeyMsg) (settingsAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return settingsCancel, nil
	case "enter":
		return settingsSave, nil
	case "tab":
		return settingsNone, p.focus((p.Focus + 1) % fieldCount)
	case "shift+tab":
		return settingsNone, p.focus((p.Focus + fieldCount - 1) % fieldCount)
	case "up", "down":
		if p.Focus == fieldModel {
			delta := 1
			if msg.String() == "up" {
				delta = -1
			}
			p.cycleModel(delta)
		}
		return settingsNone, nil
	}

	var cmd tea.Cmd
	p.Inputs[p.Focus], cmd = p.Inputs[p.Focus].Update(msg)
	return settingsNone, cmd
}

func (p *SettingsPanel) View(st styles.Styles, width int) string {
	rows := []string{st.ModalTitle.Render("Settings")}
	for i := range p.Inputs {
		f := settingsField(i)
		label := st.ModalLabel.Render(fieldLabels[f])
		box := st.FieldBox
		if f == p.Focus {
			label = st.ModalFocused.Render("› " + fieldLabels[f])
			box = st.FieldBoxFocus
		}
		field := box.Width(width).Render(p.Inputs[i].View())
		if f == fieldModel {
			if mdl, _, ok := models.FindModelByID(strings.TrimSpace(p.Inputs[i].Value())); ok {
				field = lipgloss.JoinVertical(lipgloss.Left, field, st.Hint.Render(mdl.Name+" · "+mdl.Description))
			}
		}
		rows = append(rows, label, field)
	}
	if p.Err != "" {
		rows = append(rows, st.Error.Render(p.Err))
	}
	rows = append(rows, st.Hint.PaddingTop(1).Render("Tab: next field • ↑/↓: cycle models • Enter: save • Esc: cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
