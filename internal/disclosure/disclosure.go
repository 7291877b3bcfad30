// Package disclosure models the mobile navigation menu: a panel that is either
// shown or hidden and flips in response to discrete user actions.
//
// A Menu belongs to a single page view. Nothing here is shared between views,
// so no locking is involved.
package disclosure

import "net/url"

// QueryKey is the URL query parameter carrying an open menu between requests.
const QueryKey = "menu"

// State is the visibility of the menu panel.
type State uint8

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ParseState is the inverse of String. Anything other than "open" is Closed.
func ParseState(v string) State {
	if v == "open" {
		return Open
	}
	return Closed
}

// Event is a user action that can move the menu.
type Event uint8

const (
	// MenuPressed is a press on the menu button.
	MenuPressed Event = iota
	// LinkPressed is a press on any navigation link inside the panel.
	LinkPressed
)

// Next returns the state reached from s on e. Every event is defined for
// every state.
func (s State) Next(e Event) State {
	switch e {
	case MenuPressed:
		if s == Open {
			return Closed
		}
		return Open
	case LinkPressed:
		return Closed
	}
	return s
}

// Href returns the page URL that renders the menu in state s, followed by an
// optional in-page fragment.
func (s State) Href(fragment string) string {
	u := url.URL{Path: "/", Fragment: fragment}
	if s == Open {
		u.RawQuery = url.Values{QueryKey: {s.String()}}.Encode()
	}
	return u.String()
}

// Menu holds the state of one menu instance.
type Menu struct {
	state State
}

// New returns a closed menu.
func New() *Menu {
	return &Menu{}
}

// Restore returns a menu that starts in s, e.g. when a page view is rebuilt
// from its URL.
func Restore(s State) *Menu {
	return &Menu{state: s}
}

func (m *Menu) State() State { return m.state }

func (m *Menu) IsOpen() bool { return m.state == Open }

// Dispatch applies e and returns the new state.
func (m *Menu) Dispatch(e Event) State {
	m.state = m.state.Next(e)
	return m.state
}

// Toggle is Dispatch(MenuPressed).
func (m *Menu) Toggle() State {
	return m.Dispatch(MenuPressed)
}

// Navigate is Dispatch(LinkPressed).
func (m *Menu) Navigate() State {
	return m.Dispatch(LinkPressed)
}
