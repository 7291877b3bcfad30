package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"NeonSkills/internal/catalog"
)

// MostPopular is the badge text carried by highlighted plans.
const MostPopular = "Most Popular"

// PricingSection is the "#pricing" block: heading plus one card per plan.
func PricingSection(plans []catalog.PricingPlan) g.Node {
	return h.Section(h.ID(Anchor("Pricing")), h.Class("section section--tinted"),
		h.Div(h.Class("container"),
			h.Div(h.Class("section__head section__head--center"),
				h.H2(h.Class("section__title"), g.Text("Pricing Plans")),
				h.P(h.Class("section__kicker"), g.Text("Choose your path to excellence")),
			),
			PricingGrid(plans),
		),
	)
}

// PricingGrid renders one card per plan, in the order given.
func PricingGrid(plans []catalog.PricingPlan) g.Node {
	return h.Div(h.Class("grid grid--plans"), g.Map(plans, PlanCard))
}

// PlanCard renders a single plan. A highlighted plan gets the emphasis
// styling and the MostPopular badge.
func PlanCard(plan catalog.PricingPlan) g.Node {
	return h.Article(
		c.Classes{"plan-card": true, "plan-card--highlight": plan.Highlight},
		h.Data("card", "plan"),
		g.If(plan.Highlight, h.Div(h.Class("plan-card__badge"), h.Data("badge", "most-popular"), g.Text(MostPopular))),
		h.Div(h.Class("plan-card__head"),
			h.H4(c.Classes{"plan-card__tier": true, "text-primary": plan.Highlight}, g.Text(plan.Tier)),
			h.H3(h.Class("plan-card__name"), g.Text(plan.Name)),
			h.Div(h.Class("plan-card__price"),
				h.Span(h.Class("plan-card__amount"), g.Text(plan.Price.String())),
				h.Span(h.Class("plan-card__unit"), g.Text("/ course")),
			),
		),
		inertButton(planButtonClass(plan), plan.ButtonText),
		h.Ul(h.Class("plan-card__features"),
			g.Map(plan.Features, func(f string) g.Node {
				return h.Li(h.Class("plan-card__feature"), g.Raw(iconCheck), g.Text(f))
			}),
			g.Map(plan.NotIncluded, func(f string) g.Node {
				return h.Li(h.Class("plan-card__feature plan-card__feature--excluded"), g.Raw(iconX), g.Text(f))
			}),
		),
	)
}

func planButtonClass(plan catalog.PricingPlan) string {
	if plan.Highlight {
		return "btn btn--primary btn--block"
	}
	return "btn btn--muted btn--block"
}
