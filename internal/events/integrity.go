package events

import (
	"fmt"

	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// IntegritySubscriber is the thin adapter that makes a domain entity a bus
// subscriber. It shares the entity's lifetime: registered when the entity
// enters the repository, unregistered when it leaves.
type IntegritySubscriber struct {
	entity mmodel.Entity
}

// NewIntegrity wraps an entity in its integrity handler.
func NewIntegrity(e mmodel.Entity) *IntegritySubscriber {
	return &IntegritySubscriber{entity: e}
}

// Entity returns the wrapped entity.
func (s *IntegritySubscriber) Entity() mmodel.Entity {
	return s.entity
}

// Key identifies the handler by its entity's code.
func (s *IntegritySubscriber) Key() string {
	return "integrity:" + s.entity.Code()
}

// Handle rewrites back-references on UpdateDependencies and vetoes deletion on
// CheckDependencies. Every other event, log kinds included, is ignored.
func (s *IntegritySubscriber) Handle(kind Kind, payload any) error {
	switch kind {
	case UpdateDependencies:
		p, ok := payload.(UpdateDependenciesPayload)
		if !ok {
			return pkg.ValidateInternalError(fmt.Errorf("unexpected payload %T for %s", payload, kind), "Event")
		}

		s.rewrite(p.Old, p.New)

		return nil
	case CheckDependencies:
		p, ok := payload.(CheckDependenciesPayload)
		if !ok {
			return pkg.ValidateInternalError(fmt.Errorf("unexpected payload %T for %s", payload, kind), "Event")
		}

		return s.veto(p.Target)
	default:
		return nil
	}
}

// rewrite sweeps the entity's reference fields one level deep, replacing every
// reference to old with new. List-valued fields are rewritten element-wise.
func (s *IntegritySubscriber) rewrite(old, new mmodel.Entity) {
	code := old.Code()

	switch e := s.entity.(type) {
	case *mmodel.Unit:
		if u, ok := new.(*mmodel.Unit); ok && e.Base != nil && e.Base.Code() == code {
			e.Base = u
		}
	case *mmodel.Item:
		if g, ok := new.(*mmodel.Group); ok && e.Group != nil && e.Group.Code() == code {
			e.Group = g
		}

		if u, ok := new.(*mmodel.Unit); ok && e.Unit != nil && e.Unit.Code() == code {
			e.Unit = u
		}
	case *mmodel.Movement:
		if i, ok := new.(*mmodel.Item); ok && e.Item != nil && e.Item.Code() == code {
			e.Item = i
		}

		if l, ok := new.(*mmodel.Location); ok && e.Location != nil && e.Location.Code() == code {
			e.Location = l
		}
	case *mmodel.Recipe:
		for _, component := range e.Composition {
			if i, ok := new.(*mmodel.Item); ok && component.Item != nil && component.Item.Code() == code {
				component.Item = i
			}

			if u, ok := new.(*mmodel.Unit); ok && component.Unit != nil && component.Unit.Code() == code {
				component.Unit = u
			}
		}
	}
}

// veto fails with a DependencyVetoError when the entity still references target.
func (s *IntegritySubscriber) veto(target mmodel.Entity) error {
	code := target.Code()

	references := false

	switch e := s.entity.(type) {
	case *mmodel.Unit:
		references = e.Base != nil && e.Base.Code() == code
	case *mmodel.Item:
		references = (e.Group != nil && e.Group.Code() == code) ||
			(e.Unit != nil && e.Unit.Code() == code)
	case *mmodel.Movement:
		references = (e.Item != nil && e.Item.Code() == code) ||
			(e.Location != nil && e.Location.Code() == code)
	case *mmodel.Recipe:
		for _, component := range e.Composition {
			if (component.Item != nil && component.Item.Code() == code) ||
				(component.Unit != nil && component.Unit.Code() == code) {
				references = true
				break
			}
		}
	}

	if !references {
		return nil
	}

	holder := s.entity

	return pkg.DependencyVetoError{
		EntityType: target.EntityKind(),
		HolderKind: holder.EntityKind(),
		HolderCode: holder.Code(),
		HolderName: EntityName(holder),
		Code:       cn.ErrDependencyVeto.Error(),
		Title:      "Deletion Refused",
		Message: fmt.Sprintf("The %s %s cannot be deleted: %s %q (%s) still references it.",
			target.EntityKind(), code, holder.EntityKind(), EntityName(holder), holder.Code()),
	}
}

// EntityName returns the display name of an entity, or its code when the kind
// has no name.
func EntityName(e mmodel.Entity) string {
	switch v := e.(type) {
	case *mmodel.Group:
		return v.Name
	case *mmodel.Unit:
		return v.Name
	case *mmodel.Item:
		return v.Name
	case *mmodel.Location:
		return v.Name
	case *mmodel.Recipe:
		return v.Name
	default:
		return e.Code()
	}
}
