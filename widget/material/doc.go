// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws floating action groups in the Material
// design.
//
// Like Gio's own widgets, a group is split into two parts: the
// stateful widget.Group, which owns the controller, the buttons and
// their click handling, and the stateless GroupStyle that draws it.
//
// This snippet lays out a group whose secondary buttons print a
// message when clicked:
//
//	g := widget.NewGroup(group.DefaultConfig())
//	g.Add(&widget.LabelledButton{Label: "Share", Icon: "share"})
//	g.SetListener(group.ListenerFuncs{
//		OnChildClicked: func(e group.Element) {
//			fmt.Println("clicked", e.(*widget.LabelledButton).Label)
//		},
//	})
//
//	th := material.NewTheme(res.New(nil))
//	material.Group(th, g).Layout(gtx)
//
// Customization
//
// Adjust the style returned by Group before calling Layout to change
// the look of one group:
//
//	gs := material.Group(th, g)
//	gs.Size = unit.Dp(48)
//	gs.Layout(gtx)
//
// Theme-global colors are the fields of the embedded Gio theme's
// Palette.
package material
