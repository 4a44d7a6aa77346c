// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log"

	"github.com/tweener/fag/config"
	"github.com/tweener/fag/group"
	"github.com/tweener/fag/res"
	"github.com/tweener/fag/widget"
)

// buildGroup creates the group and buttons described by f. Button
// clicks are logged.
func buildGroup(f config.File, r *res.Resources) (*widget.Group, error) {
	cfg, err := f.GroupConfig(&r.Colors)
	if err != nil {
		return nil, err
	}
	p, err := f.Policy()
	if err != nil {
		return nil, err
	}
	g := widget.NewGroup(cfg, group.WithPolicy(p))
	for _, bc := range f.Buttons {
		b := &widget.LabelledButton{
			Label: bc.Label,
			Icon:  bc.Icon,
		}
		if bc.Tint != "" {
			b.Tint = r.Colors.Resolve(bc.Tint)
		}
		if bc.BackgroundNormal != "" {
			b.Background = r.Colors.Resolve(bc.BackgroundNormal)
		}
		if bc.BackgroundPressed != "" {
			b.BackgroundPressed = r.Colors.Resolve(bc.BackgroundPressed)
		}
		if bc.Font != "" {
			b.Typeface = r.Fonts.Load(bc.Font)
		}
		g.Add(b)
	}
	g.SetListener(group.ListenerFuncs{
		OnExpanded:  func() { log.Printf("expanded") },
		OnCollapsed: func() { log.Printf("collapsed") },
		OnChildClicked: func(e group.Element) {
			log.Printf("clicked %q", e.(*widget.LabelledButton).Label)
		},
	})
	return g, nil
}
