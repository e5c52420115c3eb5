// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
	copy    key.Binding

	nextSection key.Binding
	prevSection key.Binding
	nextOption  key.Binding
	prevOption  key.Binding

	saveDraft   key.Binding
	submit      key.Binding
	attach      key.Binding
	detach      key.Binding
	extract     key.Binding
	sample      key.Binding
	reset       key.Binding
	submissions key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y", "Y")),
	no:      key.NewBinding(key.WithKeys("n", "N", "esc")),
	copy:    key.NewBinding(key.WithKeys("c")),

	nextSection: key.NewBinding(key.WithKeys("pgdown", "ctrl+right")),
	prevSection: key.NewBinding(key.WithKeys("pgup", "ctrl+left")),
	nextOption:  key.NewBinding(key.WithKeys("ctrl+n")),
	prevOption:  key.NewBinding(key.WithKeys("ctrl+p")),

	saveDraft:   key.NewBinding(key.WithKeys("ctrl+s")),
	submit:      key.NewBinding(key.WithKeys("ctrl+g")),
	attach:      key.NewBinding(key.WithKeys("ctrl+o")),
	detach:      key.NewBinding(key.WithKeys("ctrl+x")),
	extract:     key.NewBinding(key.WithKeys("ctrl+r")),
	sample:      key.NewBinding(key.WithKeys("ctrl+y")),
	reset:       key.NewBinding(key.WithKeys("ctrl+l")),
	submissions: key.NewBinding(key.WithKeys("ctrl+t")),
}
