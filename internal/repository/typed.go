package repository

import (
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Typed accessors over the buckets. Entries that fail the type assertion are
// skipped; buckets only ever hold their own kind.

// UnitsAll returns the units bucket.
func (r *Repository) UnitsAll() []*mmodel.Unit {
	out := make([]*mmodel.Unit, 0, len(r.buckets[Units]))

	for _, e := range r.buckets[Units] {
		if u, ok := e.(*mmodel.Unit); ok {
			out = append(out, u)
		}
	}

	return out
}

// GroupsAll returns the groups bucket.
func (r *Repository) GroupsAll() []*mmodel.Group {
	out := make([]*mmodel.Group, 0, len(r.buckets[Groups]))

	for _, e := range r.buckets[Groups] {
		if g, ok := e.(*mmodel.Group); ok {
			out = append(out, g)
		}
	}

	return out
}

// ItemsAll returns the items bucket.
func (r *Repository) ItemsAll() []*mmodel.Item {
	out := make([]*mmodel.Item, 0, len(r.buckets[Items]))

	for _, e := range r.buckets[Items] {
		if i, ok := e.(*mmodel.Item); ok {
			out = append(out, i)
		}
	}

	return out
}

// LocationsAll returns the locations bucket.
func (r *Repository) LocationsAll() []*mmodel.Location {
	out := make([]*mmodel.Location, 0, len(r.buckets[Locations]))

	for _, e := range r.buckets[Locations] {
		if l, ok := e.(*mmodel.Location); ok {
			out = append(out, l)
		}
	}

	return out
}

// MovementsAll returns the movements bucket.
func (r *Repository) MovementsAll() []*mmodel.Movement {
	out := make([]*mmodel.Movement, 0, len(r.buckets[Movements]))

	for _, e := range r.buckets[Movements] {
		if m, ok := e.(*mmodel.Movement); ok {
			out = append(out, m)
		}
	}

	return out
}

// RecipesAll returns the recipes bucket.
func (r *Repository) RecipesAll() []*mmodel.Recipe {
	out := make([]*mmodel.Recipe, 0, len(r.buckets[Recipes]))

	for _, e := range r.buckets[Recipes] {
		if rc, ok := e.(*mmodel.Recipe); ok {
			out = append(out, rc)
		}
	}

	return out
}

// TurnoversAll returns the turnover cache bucket.
func (r *Repository) TurnoversAll() []*mmodel.TurnoverRecord {
	out := make([]*mmodel.TurnoverRecord, 0, len(r.buckets[Turnovers]))

	for _, e := range r.buckets[Turnovers] {
		if t, ok := e.(*mmodel.TurnoverRecord); ok {
			out = append(out, t)
		}
	}

	return out
}
