// Package repository holds the in-memory registry that is the single source of
// truth during a run. Eight named buckets keep entities in stable insertion
// order; every other component reaches entities through it.
package repository

import (
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Kind names one repository bucket.
type Kind string

const (
	Units     Kind = "unit"
	Groups    Kind = "group"
	Items     Kind = "item"
	Locations Kind = "location"
	Movements Kind = "movement"
	Recipes   Kind = "recipe"
	Turnovers Kind = "turnover"
	Misc      Kind = "misc"
)

// Kinds returns every bucket kind in its canonical order.
func Kinds() []Kind {
	return []Kind{Units, Groups, Items, Locations, Movements, Recipes, Turnovers, Misc}
}

// ParseKind resolves a bucket kind from its name. The second return reports success.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, true
		}
	}

	return "", false
}

// Repository is a keyed registry of ordered entity buckets.
//
// It assumes single-writer semantics: no concurrent mutation happens inside one
// request, and requests are serialized by the caller. Iteration snapshots stay
// valid for the duration of one request.
type Repository struct {
	buckets map[Kind][]mmodel.Entity
	index   map[string]Kind

	// OnAppend and OnRemove, when set, observe every entity entering or leaving
	// a bucket. The bootstrap wires them to subscriber registration.
	OnAppend func(mmodel.Entity)
	OnRemove func(mmodel.Entity)
}

// New creates an empty repository with all buckets initialized.
func New() *Repository {
	buckets := make(map[Kind][]mmodel.Entity, len(Kinds()))
	for _, k := range Kinds() {
		buckets[k] = []mmodel.Entity{}
	}

	return &Repository{
		buckets: buckets,
		index:   make(map[string]Kind),
	}
}

// All returns the bucket's entities in stable insertion order. The returned
// slice is a copy; entities themselves are shared.
func (r *Repository) All(kind Kind) []mmodel.Entity {
	bucket := r.buckets[kind]

	out := make([]mmodel.Entity, len(bucket))
	copy(out, bucket)

	return out
}

// Append adds an entity to the bucket. Unique codes are global across all
// kinds; a duplicate is refused.
func (r *Repository) Append(kind Kind, e mmodel.Entity) error {
	if _, exists := r.index[e.Code()]; exists {
		return cn.ErrDuplicateUniqueCode
	}

	r.buckets[kind] = append(r.buckets[kind], e)
	r.index[e.Code()] = kind

	if r.OnAppend != nil {
		r.OnAppend(e)
	}

	return nil
}

// Remove deletes an entity from the bucket by identity.
func (r *Repository) Remove(kind Kind, e mmodel.Entity) error {
	bucket := r.buckets[kind]
	for i, held := range bucket {
		if held.Code() == e.Code() {
			r.buckets[kind] = append(bucket[:i:i], bucket[i+1:]...)
			delete(r.index, e.Code())

			if r.OnRemove != nil {
				r.OnRemove(held)
			}

			return nil
		}
	}

	return cn.ErrEntityNotFound
}

// Replace swaps old for new in place, preserving the bucket position. The new
// entity must carry the same unique code or one that is not taken yet.
func (r *Repository) Replace(kind Kind, old, new mmodel.Entity) error {
	if old.Code() != new.Code() {
		if _, exists := r.index[new.Code()]; exists {
			return cn.ErrDuplicateUniqueCode
		}
	}

	bucket := r.buckets[kind]
	for i, held := range bucket {
		if held.Code() == old.Code() {
			bucket[i] = new

			delete(r.index, old.Code())
			r.index[new.Code()] = kind

			if r.OnRemove != nil {
				r.OnRemove(held)
			}

			if r.OnAppend != nil {
				r.OnAppend(new)
			}

			return nil
		}
	}

	return cn.ErrEntityNotFound
}

// Find returns the entity with the given code in the bucket, or nil when absent.
func (r *Repository) Find(kind Kind, code string) mmodel.Entity {
	if r.index[code] != kind {
		return nil
	}

	for _, held := range r.buckets[kind] {
		if held.Code() == code {
			return held
		}
	}

	return nil
}

// SetAll replaces the whole bucket, re-indexing its codes. Used by the turnover
// cache eviction and the snapshot load.
func (r *Repository) SetAll(kind Kind, entities []mmodel.Entity) {
	for _, held := range r.buckets[kind] {
		delete(r.index, held.Code())

		if r.OnRemove != nil {
			r.OnRemove(held)
		}
	}

	bucket := make([]mmodel.Entity, len(entities))
	copy(bucket, entities)
	r.buckets[kind] = bucket

	for _, e := range entities {
		r.index[e.Code()] = kind

		if r.OnAppend != nil {
			r.OnAppend(e)
		}
	}
}
