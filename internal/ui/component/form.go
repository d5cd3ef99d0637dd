package component

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	TextInput FieldType = iota
	NumberInput
	PasswordInput
)

// FormField represents a single form field
type FormField struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Placeholder string
	Required    bool
	Validation  func(string) error
	Error       string

	textInput textinput.Model
}

// Form represents a form component with multiple fields
type Form struct {
	fields     []FormField
	focusIndex int
	width      int
	inline     bool

	labelStyle   lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewForm creates a new form component
func NewForm() *Form {
	return &Form{
		fields:       make([]FormField, 0),
		labelStyle:   style.FormLabelStyle,
		inputStyle:   style.FormInputStyle,
		focusedStyle: style.FormInputFocusedStyle,
		errorStyle:   style.FormErrorStyle,
	}
}

// AddField adds a field to the form
func (f *Form) AddField(name string, fieldType FieldType, label string, required bool, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 30
	ti.Placeholder = placeholder

	switch fieldType {
	case PasswordInput:
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	case NumberInput:
		if placeholder == "" {
			ti.Placeholder = "0"
		}
	}

	f.fields = append(f.fields, FormField{
		Name:        name,
		Label:       label,
		Type:        fieldType,
		Placeholder: placeholder,
		Required:    required,
		textInput:   ti,
	})

	if len(f.fields) == 1 {
		f.fields[0].textInput.Focus()
	}

	return f
}

// Inline lays the fields out side by side.
func (f *Form) Inline(inline bool) *Form {
	f.inline = inline
	return f
}

// SetFieldValue sets the value of a field
func (f *Form) SetFieldValue(name, value string) *Form {
	if field := f.field(name); field != nil {
		field.Value = value
		field.textInput.SetValue(value)
	}
	return f
}

// SetFieldValidation sets a validation function for a field
func (f *Form) SetFieldValidation(name string, validation func(string) error) *Form {
	if field := f.field(name); field != nil {
		field.Validation = validation
	}
	return f
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	inputWidth := width - 4
	if f.inline && len(f.fields) > 0 {
		inputWidth = width/len(f.fields) - 6
	}
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}
	return f
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			f.focus((f.focusIndex + 1) % len(f.fields))
			return f, nil
		case "shift+tab":
			f.focus((f.focusIndex + len(f.fields) - 1) % len(f.fields))
			return f, nil
		}
	}

	field := &f.fields[f.focusIndex]
	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)
	if v := field.textInput.Value(); v != field.Value {
		field.Value = v
		field.Error = ""
	}

	return f, cmd
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(f.fields))
	for i, field := range f.fields {
		var b strings.Builder

		label := field.Label
		if field.Required {
			label += " *"
		}
		b.WriteString(f.labelStyle.Render(label))
		b.WriteString("\n")

		fieldStyle := f.inputStyle
		if i == f.focusIndex {
			fieldStyle = f.focusedStyle
		}
		b.WriteString(fieldStyle.Render(field.textInput.View()))

		if field.Error != "" {
			b.WriteString("\n")
			b.WriteString(f.errorStyle.Render("⚠ " + field.Error))
		}
		blocks = append(blocks, b.String())
	}

	if f.inline {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	return strings.Join(blocks, "\n\n")
}

func (f *Form) focus(index int) {
	f.fields[f.focusIndex].textInput.Blur()
	f.focusIndex = index
	f.fields[f.focusIndex].textInput.Focus()
}

func (f *Form) field(name string) *FormField {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// Validate validates all form fields
func (f *Form) Validate() bool {
	valid := true

	for i := range f.fields {
		field := &f.fields[i]
		field.Error = ""

		if field.Required && strings.TrimSpace(field.Value) == "" {
			field.Error = "This field is required"
			valid = false
			continue
		}

		if field.Validation != nil {
			if err := field.Validation(field.Value); err != nil {
				field.Error = sentence(err.Error())
				valid = false
			}
		}
	}

	return valid
}

// sentence upper-cases the first letter of an error string for display.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// GetValue returns the value of a specific field
func (f *Form) GetValue(name string) string {
	if field := f.field(name); field != nil {
		return field.Value
	}
	return ""
}

// Focused returns the name of the focused field.
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focusIndex].Name
}

// Reset clears all form fields
func (f *Form) Reset() *Form {
	for i := range f.fields {
		f.fields[i].Value = ""
		f.fields[i].Error = ""
		f.fields[i].textInput.SetValue("")
	}
	if len(f.fields) > 0 {
		f.focus(0)
	}
	return f
}
