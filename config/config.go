// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads floating action group definitions from TOML
// files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gioui.org/unit"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/tweener/fag/group"
	"github.com/tweener/fag/res"
)

// EnvPrefix prefixes the environment variables overriding group
// settings, such as FAG_GROUP_EXPANDED.
const EnvPrefix = "FAG"

// File is the content of a configuration file.
type File struct {
	Group   Group    `mapstructure:"group" toml:"group"`
	Buttons []Button `mapstructure:"buttons" toml:"buttons"`
}

// Group configures the main button and the arrangement.
type Group struct {
	// Policy is "vertical" or "horizontal".
	Policy             string  `mapstructure:"policy" toml:"policy"`
	CollapsedIcon      string  `mapstructure:"collapsed_icon" toml:"collapsed_icon"`
	ExpandedIcon       string  `mapstructure:"expanded_icon" toml:"expanded_icon"`
	BackgroundNormal   string  `mapstructure:"background_normal" toml:"background_normal"`
	BackgroundPressed  string  `mapstructure:"background_pressed" toml:"background_pressed"`
	BackgroundExpanded string  `mapstructure:"background_expanded" toml:"background_expanded,omitempty"`
	Expanded           bool    `mapstructure:"expanded" toml:"expanded"`
	Rotate             bool    `mapstructure:"rotate" toml:"rotate"`
	RotationAngle      float32 `mapstructure:"rotation_angle" toml:"rotation_angle"`
	Scale              bool    `mapstructure:"scale" toml:"scale"`
	ScaleFactor        float32 `mapstructure:"scale_factor" toml:"scale_factor"`
	Margin             float32 `mapstructure:"margin" toml:"margin"`
	PaddingVertical    float32 `mapstructure:"padding_vertical" toml:"padding_vertical"`
	PaddingHorizontal  float32 `mapstructure:"padding_horizontal" toml:"padding_horizontal"`
	// Duration is a time.ParseDuration string.
	Duration string `mapstructure:"duration" toml:"duration"`
}

// Button configures a secondary labelled button.
type Button struct {
	Label             string `mapstructure:"label" toml:"label"`
	Icon              string `mapstructure:"icon" toml:"icon"`
	Tint              string `mapstructure:"tint" toml:"tint,omitempty"`
	BackgroundNormal  string `mapstructure:"background_normal" toml:"background_normal,omitempty"`
	BackgroundPressed string `mapstructure:"background_pressed" toml:"background_pressed,omitempty"`
	// Font is the path of a font file for the label.
	Font string `mapstructure:"font" toml:"font,omitempty"`
}

// Default returns the stock configuration with a few sample buttons.
func Default() File {
	return File{
		Group: Group{
			Policy:            "vertical",
			CollapsedIcon:     "add",
			ExpandedIcon:      "close",
			BackgroundNormal:  "#3f51b5",
			BackgroundPressed: "#303f9f",
			RotationAngle:     45,
			ScaleFactor:       .8,
			Margin:            16,
			PaddingVertical:   16,
			PaddingHorizontal: 16,
			Duration:          "300ms",
		},
		Buttons: []Button{
			{Label: "Share", Icon: "share", Tint: "white"},
			{Label: "Edit", Icon: "edit", Tint: "white"},
			{Label: "Delete", Icon: "delete", Tint: "white"},
		},
	}
}

// Load reads the file at path, or config.toml in the user
// configuration directory if path is empty. A missing default file is
// not an error. Environment variables prefixed with EnvPrefix override
// the group settings.
func Load(path string) (File, error) {
	v := viper.New()
	def := Default()
	setDefaults(v, def.Group)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fag"))
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return File{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if !v.IsSet("buttons") {
		f.Buttons = def.Buttons
	}
	return f, nil
}

func setDefaults(v *viper.Viper, g Group) {
	v.SetDefault("group.policy", g.Policy)
	v.SetDefault("group.collapsed_icon", g.CollapsedIcon)
	v.SetDefault("group.expanded_icon", g.ExpandedIcon)
	v.SetDefault("group.background_normal", g.BackgroundNormal)
	v.SetDefault("group.background_pressed", g.BackgroundPressed)
	v.SetDefault("group.background_expanded", g.BackgroundExpanded)
	v.SetDefault("group.expanded", g.Expanded)
	v.SetDefault("group.rotate", g.Rotate)
	v.SetDefault("group.rotation_angle", g.RotationAngle)
	v.SetDefault("group.scale", g.Scale)
	v.SetDefault("group.scale_factor", g.ScaleFactor)
	v.SetDefault("group.margin", g.Margin)
	v.SetDefault("group.padding_vertical", g.PaddingVertical)
	v.SetDefault("group.padding_horizontal", g.PaddingHorizontal)
	v.SetDefault("group.duration", g.Duration)
}

// WriteDefault writes the default configuration to path, creating its
// directory if needed.
func WriteDefault(path string) error {
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// GroupConfig converts the group section to a group.Config, resolving
// colors through colors.
func (f File) GroupConfig(colors *res.Colors) (group.Config, error) {
	g := f.Group
	d, err := time.ParseDuration(g.Duration)
	if err != nil {
		return group.Config{}, fmt.Errorf("config: group duration: %w", err)
	}
	cfg := group.Config{
		CollapsedIcon:     g.CollapsedIcon,
		ExpandedIcon:      g.ExpandedIcon,
		BackgroundNormal:  colors.Resolve(g.BackgroundNormal),
		BackgroundPressed: colors.Resolve(g.BackgroundPressed),
		Rotate:            g.Rotate,
		RotationAngle:     g.RotationAngle,
		Scale:             g.Scale,
		ScaleFactor:       g.ScaleFactor,
		Expanded:          g.Expanded,
		Margin:            unit.Dp(g.Margin),
		PaddingVertical:   unit.Dp(g.PaddingVertical),
		PaddingHorizontal: unit.Dp(g.PaddingHorizontal),
		Duration:          d,
	}
	if g.BackgroundExpanded != "" {
		cfg.BackgroundExpanded = colors.Resolve(g.BackgroundExpanded)
	}
	return cfg, nil
}

// Policy returns the arrangement policy named by the group section.
func (f File) Policy() (group.Policy, error) {
	switch strings.ToLower(f.Group.Policy) {
	case "", "vertical":
		return group.Vertical{}, nil
	case "horizontal":
		return group.Horizontal{}, nil
	default:
		return nil, fmt.Errorf("config: unknown policy %q", f.Group.Policy)
	}
}
