package in

import (
	"encoding/json"

	"github.com/foodops/stockbook/internal/render"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/internal/services/query"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
	netHTTP "github.com/foodops/stockbook/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// DataHandler dumps repository buckets in the supported response formats.
type DataHandler struct {
	Query *query.UseCase
}

// GetEntities lists the supported kinds and formats.
func (handler *DataHandler) GetEntities(c *fiber.Ctx) error {
	kinds := make([]string, 0, len(repository.Kinds()))
	for _, kind := range repository.Kinds() {
		kinds = append(kinds, string(kind))
	}

	return netHTTP.OK(c, fiber.Map{
		"entities": kinds,
		"formats":  mmodel.SupportedFormats,
	})
}

// GetData dumps one bucket in the requested format.
func (handler *DataHandler) GetData(c *fiber.Ctx) error {
	return handler.dump(c, nil)
}

// GetDataFiltered dumps one bucket narrowed by the posted filter array.
func (handler *DataHandler) GetDataFiltered(c *fiber.Ctx) error {
	filters, err := decodeFilterArray(c)
	if err != nil {
		return netHTTP.WithError(c, err)
	}

	return handler.dump(c, filters)
}

// GetFilters describes the filterable fields and operators of one kind.
func (handler *DataHandler) GetFilters(c *fiber.Ctx) error {
	ctx := c.UserContext()

	descriptor, err := handler.Query.DescribeFilters(ctx, c.Params("kind"))
	if err != nil {
		return netHTTP.WithError(c, err)
	}

	return netHTTP.OK(c, descriptor)
}

func (handler *DataHandler) dump(c *fiber.Ctx, filters []mmodel.FilterInput) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	kind := c.Params("kind")
	format := c.Params("fmt")

	if !render.IsSupported(format) {
		return netHTTP.WithError(c, pkg.ValidateBusinessError(cn.ErrUnsupportedFormat, "Data", format))
	}

	var (
		records []mmodel.Entity
		err     error
	)

	if len(filters) > 0 {
		records, err = handler.Query.GetAllFiltered(ctx, kind, filters)
	} else {
		records, err = handler.Query.GetAll(ctx, kind)
	}

	if err != nil {
		logger.Infof("Error dumping %s: %s", kind, err.Error())

		return netHTTP.WithError(c, err)
	}

	if format == mmodel.FormatJSON {
		return netHTTP.OK(c, records)
	}

	body, err := render.Render(kind, format, records)
	if err != nil {
		return netHTTP.WithError(c, err)
	}

	c.Set(fiber.HeaderContentType, render.ContentType(format))

	return c.SendString(body)
}

// decodeFilterArray parses a request body holding a JSON array of filters and
// validates each entry.
func decodeFilterArray(c *fiber.Ctx) ([]mmodel.FilterInput, error) {
	var filters []mmodel.FilterInput

	if err := json.Unmarshal(c.Body(), &filters); err != nil {
		return nil, netHTTP.ValidationKnownFieldsError{
			Code:    cn.ErrBadRequest.Error(),
			Title:   "Malformed Request Body",
			Message: "The request body must be a JSON array of filters.",
		}
	}

	for _, f := range filters {
		if err := netHTTP.ValidateStruct(&f); err != nil {
			return nil, err
		}
	}

	return filters, nil
}
