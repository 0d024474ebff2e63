// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const formInputWidth = 40

type formField struct {
	label   string
	secret  bool
	initial string
	hint    string
	charMax int
}

// formModel is a column of labelled text inputs with one focused field.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields ...formField) formModel {
	f := formModel{
		title:  title,
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		in := textinput.New()
		in.Width = formInputWidth
		in.Placeholder = field.hint
		if field.charMax > 0 {
			in.CharLimit = field.charMax
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(field.initial)

		f.labels[i] = field.label
		f.inputs[i] = in
	}

	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f formModel) focusNext() formModel {
	return f.focusAt((f.focus + 1) % len(f.inputs))
}

func (f formModel) focusPrev() formModel {
	return f.focusAt((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f formModel) focusAt(i int) formModel {
	if len(f.inputs) == 0 {
		return f
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

// value returns the trimmed content of field i. Secret fields keep their
// whitespace.
func (f formModel) value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	if f.inputs[i].EchoMode == textinput.EchoPassword {
		return f.inputs[i].Value()
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) View() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(f.labels[i])+1))
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return b.String()
}
