// SPDX-License-Identifier: Unlicense OR MIT

package res

import (
	"fmt"
	"log"
	"os"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
)

// Fonts loads font files once and tracks the resulting faces for
// building a text shaper.
type Fonts struct {
	Logger *log.Logger
	// ReadFile reads a font file. It defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	typefaces map[string]font.Typeface
	faces     []font.FontFace
}

// Load returns the typeface of the font file at path, loading it on
// first use. An empty path, or a file that fails to load, yields the
// empty typeface, which selects the default font.
func (f *Fonts) Load(path string) font.Typeface {
	if path == "" {
		return ""
	}
	if tf, ok := f.typefaces[path]; ok {
		return tf
	}
	tf, err := f.load(path)
	if err != nil {
		logger(f.Logger).Printf("res: font %q: %v", path, err)
	}
	if f.typefaces == nil {
		f.typefaces = make(map[string]font.Typeface)
	}
	f.typefaces[path] = tf
	return tf
}

func (f *Fonts) load(path string) (font.Typeface, error) {
	read := f.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return "", err
	}
	faces, err := opentype.ParseCollection(data)
	if err != nil {
		return "", err
	}
	if len(faces) == 0 {
		return "", fmt.Errorf("no faces")
	}
	f.faces = append(f.faces, faces...)
	return faces[0].Font.Typeface, nil
}

// Collection returns the Go fonts followed by every loaded face.
func (f *Fonts) Collection() []font.FontFace {
	return append(gofont.Collection(), f.faces...)
}
