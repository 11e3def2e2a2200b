// Package command implements the write side: reference mutations routed through
// the event bus and the block-period installation.
package command

import (
	"strings"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/internal/settings"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/iancoleman/strcase"
)

// UseCase aggregates the collaborators of the write operations.
type UseCase struct {
	// Repo is the in-memory registry holding all entities.
	Repo *repository.Repository

	// Bus dispatches dependency and notification events.
	Bus *events.Bus

	// Settings owns the cutoff and its cache coupling.
	Settings *settings.Manager
}

// referenceKinds are the kinds the reference mutations accept.
var referenceKinds = map[string]repository.Kind{
	"item":     repository.Items,
	"group":    repository.Groups,
	"unit":     repository.Units,
	"location": repository.Locations,
}

// parseReferenceKind normalizes and validates a reference kind name.
func parseReferenceKind(kind string) (repository.Kind, error) {
	normalized := strcase.ToSnake(strings.TrimSpace(kind))

	bucket, ok := referenceKinds[normalized]
	if !ok {
		return "", pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", kind)
	}

	return bucket, nil
}

func (uc *UseCase) findGroup(code string) (*mmodel.Group, error) {
	if e := uc.Repo.Find(repository.Groups, code); e != nil {
		if g, ok := e.(*mmodel.Group); ok {
			return g, nil
		}
	}

	return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Group", code)
}

func (uc *UseCase) findUnit(code string) (*mmodel.Unit, error) {
	if e := uc.Repo.Find(repository.Units, code); e != nil {
		if u, ok := e.(*mmodel.Unit); ok {
			return u, nil
		}
	}

	return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Unit", code)
}

func (uc *UseCase) findLocation(code string) (*mmodel.Location, error) {
	if e := uc.Repo.Find(repository.Locations, code); e != nil {
		if l, ok := e.(*mmodel.Location); ok {
			return l, nil
		}
	}

	return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Location", code)
}
