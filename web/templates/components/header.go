package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"NeonSkills/internal/disclosure"
)

// Header renders the sticky site header. The mobile panel is part of the
// output only while menu is Open.
func Header(menu disclosure.State) g.Node {
	return h.Header(h.Class("site-header"),
		h.Div(h.Class("container site-header__bar"),
			h.Div(h.Class("site-header__left"),
				brand(),
				h.Nav(h.Class("nav nav--desktop"), h.Aria("label", "Primary"),
					g.Map(NavItems, func(n NavItem) g.Node {
						return h.A(h.Class("nav__link"), h.Href("#"+n.Anchor()), g.Text(n.Label))
					}),
				),
			),
			h.Div(h.Class("site-header__actions"),
				h.Label(h.Class("search"),
					g.Raw(iconSearch),
					h.Input(h.Type("text"), h.Name("q"), h.Placeholder("Search courses..."), h.Aria("label", "Search courses")),
				),
				inertButton("btn btn--primary btn--login", "Login"),
				menuButton(menu),
			),
		),
		g.If(menu == disclosure.Open, mobileMenu(menu)),
	)
}

func menuButton(menu disclosure.State) g.Node {
	label, icon := "Open menu", iconMenu
	if menu == disclosure.Open {
		label, icon = "Close menu", iconX
	}
	return h.A(h.Class("menu-toggle"),
		h.Href(menu.Next(disclosure.MenuPressed).Href("")),
		h.Aria("controls", "mobile-menu"),
		h.Aria("expanded", strconv.FormatBool(menu == disclosure.Open)),
		h.Aria("label", label),
		g.Raw(icon),
	)
}

func mobileMenu(menu disclosure.State) g.Node {
	target := menu.Next(disclosure.LinkPressed)
	return h.Div(h.ID("mobile-menu"), h.Class("mobile-menu"),
		h.Nav(h.Class("nav nav--mobile"), h.Aria("label", "Mobile"),
			g.Map(NavItems, func(n NavItem) g.Node {
				return h.A(h.Class("nav__link nav__link--mobile"), h.Href(target.Href(n.Anchor())), g.Text(n.Label))
			}),
			inertButton("btn btn--primary btn--block", "Login"),
		),
	)
}
