// SPDX-License-Identifier: Unlicense OR MIT

package group

// Listener receives group notifications. Notifications are delivered
// synchronously, before any animation they start has run.
type Listener interface {
	// Expanded is called when a collapsed group starts expanding.
	Expanded()
	// Collapsed is called when an expanded group starts collapsing.
	Collapsed()
	// ChildClicked is called when an expanded secondary element is
	// activated.
	ChildClicked(e Element)
}

// ListenerFuncs adapts functions to a Listener. Nil fields are
// skipped.
type ListenerFuncs struct {
	OnExpanded     func()
	OnCollapsed    func()
	OnChildClicked func(e Element)
}

var _ Listener = ListenerFuncs{}

func (l ListenerFuncs) Expanded() {
	if l.OnExpanded != nil {
		l.OnExpanded()
	}
}

func (l ListenerFuncs) Collapsed() {
	if l.OnCollapsed != nil {
		l.OnCollapsed()
	}
}

func (l ListenerFuncs) ChildClicked(e Element) {
	if l.OnChildClicked != nil {
		l.OnChildClicked(e)
	}
}
