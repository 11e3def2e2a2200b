package in

import (
	"time"

	"github.com/foodops/stockbook/internal/services/command"
	"github.com/foodops/stockbook/internal/settings"
	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mmodel"
	netHTTP "github.com/foodops/stockbook/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler reads and installs the block period.
type SettingsHandler struct {
	Command  *command.UseCase
	Settings *settings.Manager
}

// GetBlockPeriod returns the configured cutoff, or null when none is set.
func (handler *SettingsHandler) GetBlockPeriod(c *fiber.Ctx) error {
	var period *string

	if bp := handler.Settings.BlockPeriod(); bp != nil {
		formatted := bp.UTC().Format(time.RFC3339)
		period = &formatted
	}

	return netHTTP.OK(c, fiber.Map{
		"block_period": period,
	})
}

// SetBlockPeriod installs a new cutoff, recomputing and persisting the turnover
// cache before the settings change becomes visible.
func (handler *SettingsHandler) SetBlockPeriod(a any, c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)

	payload := a.(*mmodel.BlockPeriodInput)

	cutoff, err := pkg.ParseInstant(payload.BlockPeriod)
	if err != nil {
		return netHTTP.WithError(c, pkg.ValidateBusinessError(err, "Settings", payload.BlockPeriod))
	}

	if err := handler.Command.SetBlockPeriod(ctx, cutoff); err != nil {
		logger.Infof("Error installing block period: %s", err.Error())

		return netHTTP.WithError(c, err)
	}

	return netHTTP.OK(c, fiber.Map{
		"block_period": cutoff.UTC().Format(time.RFC3339),
	})
}
