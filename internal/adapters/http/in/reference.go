// Package in carries the fiber handlers exposing the service over HTTP.
package in

import (
	"github.com/foodops/stockbook/internal/services/command"
	"github.com/foodops/stockbook/internal/services/query"
	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mmodel"
	netHTTP "github.com/foodops/stockbook/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler struct contains a cqrs use case for managing reference data
// in related operations.
type ReferenceHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// CreateReference is a method that creates a reference entity of the path kind.
func (handler *ReferenceHandler) CreateReference(a any, c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	kind := c.Params("kind")
	payload := a.(*mmodel.ReferenceInput)

	logger.Infof("Request to create a %s with details: %#v", kind, payload)

	entity, err := handler.Command.CreateReference(ctx, kind, payload)
	if err != nil {
		logger.Infof("Error to create %s: %s", kind, err.Error())

		return netHTTP.WithError(c, err)
	}

	logger.Infof("Successfully created %s", kind)

	return netHTTP.Created(c, entity)
}

// UpdateReference is a method that updates a reference entity by unique code.
func (handler *ReferenceHandler) UpdateReference(a any, c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	kind := c.Params("kind")
	payload := a.(*mmodel.ReferenceInput)

	logger.Infof("Request to update a %s with details: %#v", kind, payload)

	entity, err := handler.Command.ChangeReference(ctx, kind, payload.UniqueCode, payload)
	if err != nil {
		logger.Infof("Error to update %s: %s", kind, err.Error())

		return netHTTP.WithError(c, err)
	}

	logger.Infof("Successfully updated %s", kind)

	return netHTTP.OK(c, entity)
}

// DeleteReference is a method that removes a reference entity by unique code,
// unless a dependency veto refuses the removal.
func (handler *ReferenceHandler) DeleteReference(a any, c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	kind := c.Params("kind")
	payload := a.(*mmodel.DeleteReferenceInput)

	logger.Infof("Request to delete %s %s", kind, payload.UniqueCode)

	if err := handler.Command.DeleteReference(ctx, kind, payload.UniqueCode); err != nil {
		logger.Infof("Error to delete %s: %s", kind, err.Error())

		return netHTTP.WithError(c, err)
	}

	logger.Infof("Successfully deleted %s %s", kind, payload.UniqueCode)

	return netHTTP.NoContent(c)
}
