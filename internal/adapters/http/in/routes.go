package in

import (
	"sync"

	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mlog"
	"github.com/foodops/stockbook/pkg/mmodel"
	lib "github.com/foodops/stockbook/pkg/net/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewRouter registers routes to the Server. Requests are serialized behind a
// whole-process lock: the repository, cache, settings and bus are single-writer.
func NewRouter(lg mlog.Logger, rh *ReferenceHandler, dh *DataHandler, ph *ReportHandler, sh *SettingsHandler) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	f.Use(cors.New())
	f.Use(lib.WithHTTPLogging(lg))
	f.Use(lib.WithRequestSerialization(&sync.Mutex{}))
	f.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(pkg.ContextWithLogger(c.UserContext(), lg))
		return c.Next()
	})

	// Entities and data dumps
	f.Get("/api/entities", dh.GetEntities)
	f.Get("/api/data/:kind/:fmt", dh.GetData)
	f.Post("/api/data/:kind/:fmt", dh.GetDataFiltered)
	f.Get("/api/filters/:kind", dh.GetFilters)

	// Reports
	f.Get("/api/reports/osv", ph.GetOSV)
	f.Post("/api/reports/osv/filter", ph.GetOSVFiltered)
	f.Get("/api/balances", ph.GetBalances)

	// Settings
	f.Get("/api/settings/block-period", sh.GetBlockPeriod)
	f.Post("/api/settings/block-period", lib.WithBody(new(mmodel.BlockPeriodInput), sh.SetBlockPeriod))

	// Reference CRUD
	f.Put("/api/reference/:kind", lib.WithBody(new(mmodel.ReferenceInput), rh.CreateReference))
	f.Patch("/api/reference/:kind", lib.WithBody(new(mmodel.ReferenceInput), rh.UpdateReference))
	f.Delete("/api/reference/:kind", lib.WithBody(new(mmodel.DeleteReferenceInput), rh.DeleteReference))

	f.Get("/health", lib.Ping)

	return f
}
