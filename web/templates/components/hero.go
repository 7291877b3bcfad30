package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero is the opening banner with the headline and call-to-action buttons.
func Hero() g.Node {
	return h.Section(h.Class("hero"),
		h.Div(h.Class("hero__backdrop"),
			h.Img(h.Src("https://picsum.photos/seed/matrix/1920/1080?blur=10"), h.Alt("Background"), noReferrer()),
		),
		h.Div(h.Class("container hero__content"),
			h.Span(h.Class("pill"), g.Text("Next Gen Learning Platform")),
			h.H1(h.Class("hero__title neon-glow"),
				g.Text("Level Up Your "), h.Span(h.Class("text-primary"), g.Text("Digital Skills")),
			),
			h.P(h.Class("hero__lead"),
				g.Text("Master high-demand skills in coding, design, and marketing with our futuristic curriculum designed for the 2025 economy."),
			),
			h.Div(h.Class("hero__actions"),
				inertButton("btn btn--primary btn--lg neon-box-shadow", "Start Learning"),
				inertButton("btn btn--ghost btn--lg", "View Catalog"),
			),
		),
	)
}

func noReferrer() g.Node {
	return g.Attr("referrerpolicy", "no-referrer")
}
