// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newItem   key.Binding
	refresh   key.Binding
	filter    key.Binding
	status    key.Binding
	finalize  key.Binding
	payment   key.Binding
	delete    key.Binding
	interview key.Binding
	toggle    key.Binding
	finance   key.Binding
	upcoming  key.Binding
	admin     key.Binding
	reset     key.Binding
	password  key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	filter:    key.NewBinding(key.WithKeys("f")),
	status:    key.NewBinding(key.WithKeys("s")),
	finalize:  key.NewBinding(key.WithKeys("x")),
	payment:   key.NewBinding(key.WithKeys("p")),
	delete:    key.NewBinding(key.WithKeys("d")),
	interview: key.NewBinding(key.WithKeys("i")),
	toggle:    key.NewBinding(key.WithKeys("t")),
	finance:   key.NewBinding(key.WithKeys("m")),
	upcoming:  key.NewBinding(key.WithKeys("u")),
	admin:     key.NewBinding(key.WithKeys("a")),
	reset:     key.NewBinding(key.WithKeys("R")),
	password:  key.NewBinding(key.WithKeys("P")),
	copy:      key.NewBinding(key.WithKeys("c")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
