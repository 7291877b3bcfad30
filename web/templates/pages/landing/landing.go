package landing

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"NeonSkills/internal/catalog"
	"NeonSkills/internal/disclosure"
	"NeonSkills/web/templates/components"
)

// Title is the document title of the landing page.
const Title = "NeonSkills | Level Up Your Digital Skills"

// Props is everything the landing page is rendered from.
type Props struct {
	Catalog *catalog.Catalog
	Menu    disclosure.State
}

// Page returns the landing page as a templ component. The same Props always
// produce the same bytes.
func Page(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(p).Render(w)
	})
}

// Document builds the full HTML document.
func Document(p Props) g.Node {
	var (
		courses []catalog.Course
		plans   []catalog.PricingPlan
	)
	if p.Catalog != nil {
		courses, plans = p.Catalog.Courses, p.Catalog.Plans
	}

	return c.HTML5(c.HTML5Props{
		Title:       Title,
		Description: "Master high-demand skills in coding, design, and marketing.",
		Language:    "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/styles.css")),
		},
		Body: []g.Node{
			h.Div(h.Class("page"),
				components.Header(p.Menu),
				h.Main(
					components.Hero(),
					components.CoursesSection(courses),
					components.PricingSection(plans),
					components.Newsletter(),
				),
				components.Footer(),
			),
		},
	})
}
