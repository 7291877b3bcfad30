package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NavItem is one entry of the primary navigation.
type NavItem struct {
	Label string
}

// Anchor is the fragment identifier of the section the item points at.
func (n NavItem) Anchor() string {
	return Anchor(n.Label)
}

// Anchor turns a navigation label into its section id.
func Anchor(label string) string {
	return strings.ToLower(label)
}

// NavItems lists the in-page sections, in display order.
var NavItems = []NavItem{
	{Label: "Courses"},
	{Label: "Pricing"},
	{Label: "About"},
}

func brand() g.Node {
	return h.A(h.Class("brand"), h.Href("/"),
		h.Span(h.Class("brand__mark"), g.Raw(iconBolt)),
		h.Span(h.Class("brand__name"), g.Text("NeonSkills")),
	)
}

// inertButton renders a control whose action is not wired to anything yet.
func inertButton(class, label string, children ...g.Node) g.Node {
	return h.Button(h.Type("button"), h.Class(class), g.Text(label), g.Group(children))
}
