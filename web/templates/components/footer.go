package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type footerColumn struct {
	Title string
	Links []string
}

var footerColumns = []footerColumn{
	{Title: "Platform", Links: []string{"Courses", "Mentors", "Enterprise"}},
	{Title: "Resources", Links: []string{"Documentation", "Blog", "Support"}},
}

type socialLink struct {
	Label string
	Icon  string
}

var socialLinks = []socialLink{
	{"Terminal", iconTerminal},
	{"Code", iconCode},
	{"Website", iconGlobe},
}

var legalLinks = []string{"Privacy Protocol", "Service Terms", "Cookie Data"}

// Footer doubles as the About section.
func Footer() g.Node {
	return h.Footer(h.ID(Anchor("About")), h.Class("site-footer"),
		h.Div(h.Class("container"),
			h.Div(h.Class("site-footer__grid"),
				h.Div(h.Class("site-footer__about"),
					h.Div(h.Class("brand"),
						h.Span(h.Class("brand__mark"), g.Raw(iconBolt)),
						h.H2(h.Class("brand__name"), g.Text("NeonSkills")),
					),
					h.P(g.Text("The world's most advanced learning platform for digital specialists. Built by hackers, for creators.")),
				),
				g.Map(footerColumns, func(col footerColumn) g.Node {
					return h.Div(h.Class("site-footer__column"),
						h.H4(g.Text(col.Title)),
						g.Map(col.Links, func(l string) g.Node {
							return h.A(h.Href("#"), g.Text(l))
						}),
					)
				}),
				h.Div(h.Class("site-footer__column"),
					h.H4(g.Text("Social")),
					h.Div(h.Class("social"),
						g.Map(socialLinks, func(s socialLink) g.Node {
							return h.A(h.Class("social__link"), h.Href("#"), h.Aria("label", s.Label), g.Raw(s.Icon))
						}),
					),
				),
			),
			h.Div(h.Class("site-footer__bottom"),
				h.P(g.Text("© 2025 NEONSKILLS. ALL SYSTEMS OPERATIONAL.")),
				h.Div(h.Class("site-footer__legal"),
					g.Map(legalLinks, func(l string) g.Node {
						return h.A(h.Href("#"), g.Text(l))
					}),
				),
			),
		),
	)
}
