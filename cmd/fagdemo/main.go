// SPDX-License-Identifier: Unlicense OR MIT

// Command fagdemo shows a floating action group configured from a
// TOML file.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/tweener/fag/config"
	"github.com/tweener/fag/res"
	"github.com/tweener/fag/widget"
	"github.com/tweener/fag/widget/material"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		path         string
		writeDefault string
	)
	root := &cobra.Command{
		Use:          "fagdemo",
		Short:        "Floating action group demo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeDefault != "" {
				if err := config.WriteDefault(writeDefault); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", writeDefault)
				return nil
			}
			f, err := config.Load(path)
			if err != nil {
				return err
			}
			r := res.New(log.Default())
			g, err := buildGroup(f, r)
			if err != nil {
				return err
			}
			th := material.NewTheme(r)
			go func() {
				if err := loop(th, g); err != nil {
					log.Fatal(err)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	root.Flags().StringVarP(&path, "config", "c", "", "configuration file (default $XDG_CONFIG_HOME/fag/config.toml)")
	root.Flags().StringVar(&writeDefault, "write-default", "", "write the default configuration to a file and exit")
	return root
}

func loop(th *material.Theme, g *widget.Group) error {
	w := new(app.Window)
	w.Option(app.Title("fagdemo"), app.Size(unit.Dp(400), unit.Dp(700)))
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			paint.Fill(gtx.Ops, color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff})
			layout.SE.Layout(gtx, material.Group(th, g).Layout)
			e.Frame(gtx.Ops)
		}
	}
}
