package catalog

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError describes one authoring mistake in the catalog.
type ValidationError struct {
	Section string
	Index   int
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d].%s: %s", e.Section, e.Index, e.Field, e.Reason)
}

// Validate reports every problem found in c as a single joined error.
// A nil result means every record has all of its fields set, prices are
// non-negative and course ids are unique.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(section string, i int, field, reason string) {
		errs = append(errs, &ValidationError{Section: section, Index: i, Field: field, Reason: reason})
	}

	seen := make(map[int]int, len(c.Courses))
	for i, course := range c.Courses {
		if first, ok := seen[course.ID]; ok {
			add("courses", i, "id", fmt.Sprintf("duplicate id %d (first used by courses[%d])", course.ID, first))
		} else {
			seen[course.ID] = i
		}
		if !course.Price.valid() {
			add("courses", i, "price", "must be a finite, non-negative amount")
		}
		for _, f := range []struct{ name, value string }{
			{"title", course.Title},
			{"category", course.Category},
			{"duration", course.Duration},
			{"image", course.Image},
			{"description", course.Description},
			{"students", course.Students},
		} {
			if f.value == "" {
				add("courses", i, f.name, "required")
			}
		}
	}

	for i, plan := range c.Plans {
		if plan.Name == "" {
			add("pricing", i, "name", "required")
		}
		if plan.Tier == "" {
			add("pricing", i, "tier", "required")
		}
		if plan.ButtonText == "" {
			add("pricing", i, "buttonText", "required")
		}
		if !plan.Price.valid() {
			add("pricing", i, "price", "must be a finite, non-negative amount")
		}
	}

	return errors.Join(errs...)
}

func (p Price) valid() bool {
	v := float64(p)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
