// SPDX-License-Identifier: Unlicense OR MIT

package res

import (
	"log"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// builtin maps icon names to Material Design IconVG data.
var builtin = map[string][]byte{
	"add":      icons.ContentAdd,
	"attach":   icons.EditorAttachFile,
	"call":     icons.CommunicationCall,
	"camera":   icons.ImagePhotoCamera,
	"clear":    icons.ContentClear,
	"close":    icons.NavigationClose,
	"delete":   icons.ActionDelete,
	"edit":     icons.EditorModeEdit,
	"email":    icons.CommunicationEmail,
	"favorite": icons.ActionFavorite,
	"menu":     icons.NavigationMenu,
	"message":  icons.CommunicationMessage,
	"search":   icons.ActionSearch,
	"settings": icons.ActionSettings,
	"share":    icons.SocialShare,
}

// Icons resolves icon names to decoded icons. Decoded icons are
// cached.
type Icons struct {
	Logger *log.Logger

	data  map[string][]byte
	cache map[string]*widget.Icon
}

// Register adds or replaces an icon from IconVG data.
func (ic *Icons) Register(name string, data []byte) {
	if ic.data == nil {
		ic.data = make(map[string][]byte)
	}
	ic.data[name] = data
	delete(ic.cache, name)
}

// Lookup returns the icon for name, or nil if name is empty, unknown
// or its data is invalid.
func (ic *Icons) Lookup(name string) *widget.Icon {
	if name == "" {
		return nil
	}
	if i, ok := ic.cache[name]; ok {
		return i
	}
	data, ok := ic.data[name]
	if !ok {
		data, ok = builtin[name]
	}
	if !ok {
		logger(ic.Logger).Printf("res: unknown icon %q", name)
		ic.put(name, nil)
		return nil
	}
	i, err := widget.NewIcon(data)
	if err != nil {
		logger(ic.Logger).Printf("res: icon %q: %v", name, err)
	}
	ic.put(name, i)
	return i
}

func (ic *Icons) put(name string, i *widget.Icon) {
	if ic.cache == nil {
		ic.cache = make(map[string]*widget.Icon)
	}
	ic.cache[name] = i
}
