package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Newsletter is the closing call-to-action. The email field and Subscribe
// button are placeholders with no submission target.
func Newsletter() g.Node {
	return h.Section(h.Class("section section--bordered"),
		h.Div(h.Class("container"),
			h.Div(h.Class("cta"),
				h.Div(h.Class("cta__copy"),
					h.H2(h.Class("section__title"), g.Text("Ready to start your journey?")),
					h.P(g.Text("Join 50,000+ students mastering the digital frontier today.")),
				),
				h.Div(h.Class("cta__form"),
					h.Input(h.Type("email"), h.Name("email"), h.Placeholder("Enter your email"), h.Aria("label", "Email address")),
					inertButton("btn btn--primary btn--lg", "Subscribe"),
				),
			),
		),
	)
}
