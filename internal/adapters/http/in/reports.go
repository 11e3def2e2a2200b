package in

import (
	"github.com/foodops/stockbook/internal/services/query"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	netHTTP "github.com/foodops/stockbook/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler exposes the OSV and balance reports.
type ReportHandler struct {
	Query *query.UseCase
}

// GetOSV generates the turnover-balance sheet from query parameters.
func (handler *ReportHandler) GetOSV(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	start, err := pkg.ParseInstant(c.Query("start_date"))
	if err != nil {
		return netHTTP.WithError(c, pkg.ValidateBusinessError(err, "OSV", c.Query("start_date")))
	}

	end, err := pkg.ParseInstant(c.Query("end_date"))
	if err != nil {
		return netHTTP.WithError(c, pkg.ValidateBusinessError(err, "OSV", c.Query("end_date")))
	}

	storageID := c.Query("storage_id")
	if storageID == "" {
		return netHTTP.WithError(c, pkg.ValidateBusinessError(cn.ErrMissingRequiredField, "OSV", "storage_id"))
	}

	rows, err := handler.Query.GetOSV(ctx, start, end, storageID)
	if err != nil {
		logger.Infof("Error generating osv: %s", err.Error())

		return netHTTP.WithError(c, err)
	}

	return netHTTP.OK(c, rows)
}

// GetOSVFiltered generates the turnover-balance sheet from a filter array that
// carries the period and storage pseudo-fields.
func (handler *ReportHandler) GetOSVFiltered(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	filters, err := decodeFilterArray(c)
	if err != nil {
		return netHTTP.WithError(c, err)
	}

	rows, err := handler.Query.GetOSVFiltered(ctx, filters)
	if err != nil {
		logger.Infof("Error generating filtered osv: %s", err.Error())

		return netHTTP.WithError(c, err)
	}

	return netHTTP.OK(c, rows)
}

// GetBalances returns balance rows at a target date, optionally for one location.
func (handler *ReportHandler) GetBalances(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	target, err := pkg.ParseInstant(c.Query("date"))
	if err != nil {
		return netHTTP.WithError(c, pkg.ValidateBusinessError(err, "Balance", c.Query("date")))
	}

	rows, err := handler.Query.GetBalances(ctx, target, c.Query("storage_id"))
	if err != nil {
		logger.Infof("Error computing balances: %s", err.Error())

		return netHTTP.WithError(c, err)
	}

	return netHTTP.OK(c, rows)
}
