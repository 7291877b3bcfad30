package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"NeonSkills/internal/catalog"
)

// CoursesSection is the "Featured Courses" block.
func CoursesSection(courses []catalog.Course) g.Node {
	return h.Section(h.ID(Anchor("Courses")), h.Class("section"),
		h.Div(h.Class("container"),
			h.Div(h.Class("section__head section__head--split"),
				h.Div(
					h.H2(h.Class("section__title"), g.Text("Featured Courses")),
					h.Div(h.Class("section__rule")),
				),
				h.A(h.Class("link-arrow"), h.Href("#"), g.Text("View All "), g.Raw(iconArrow)),
			),
			CourseGrid(courses),
		),
	)
}

// CourseGrid renders one card per course, in the order given.
func CourseGrid(courses []catalog.Course) g.Node {
	return h.Div(h.Class("grid grid--courses"), g.Map(courses, CourseCard))
}

// CourseCard renders a single course. Output depends only on course.
func CourseCard(course catalog.Course) g.Node {
	return h.Article(h.Class("course-card"), h.Data("card", "course"), h.Data("course-id", strconv.Itoa(course.ID)),
		h.Div(h.Class("course-card__media"),
			h.Img(h.Src(course.Image), h.Alt(course.Title), g.Attr("loading", "lazy"), noReferrer()),
			h.Div(h.Class("course-card__price"), g.Text(course.Price.String())),
		),
		h.Div(h.Class("course-card__body"),
			h.Span(h.Class("eyebrow"), g.Textf("%s • %s", course.Category, course.Duration)),
			h.H3(h.Class("course-card__title"), g.Text(course.Title)),
			h.P(h.Class("course-card__description"), g.Text(course.Description)),
			h.Div(h.Class("course-card__footer"),
				h.Div(h.Class("course-card__students"),
					h.Div(h.Class("avatars"), avatars(course.ID)),
					h.Span(g.Text(course.Students)),
				),
				inertButton("btn btn--outline btn--sm", "Enroll ", g.Raw(iconCart)),
			),
		),
	)
}

func avatars(seed int) g.Node {
	nodes := make(g.Group, 0, 3)
	for i := 0; i < 3; i++ {
		nodes = append(nodes, h.Img(
			h.Class("avatar"),
			h.Src(fmt.Sprintf("https://picsum.photos/seed/%d/50/50", seed+i)),
			h.Alt("User"),
			noReferrer(),
		))
	}
	return nodes
}
