// Package query implements the read side: balances, the turnover-balance sheet
// and bucket dumps with filtering.
package query

import (
	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/internal/settings"
	"github.com/foodops/stockbook/internal/turnover"
)

// UseCase aggregates the collaborators of the read operations.
type UseCase struct {
	// Repo is the in-memory registry holding all entities.
	Repo *repository.Repository

	// Turnover serves the pre-aggregated cache and period rollups.
	Turnover *turnover.Service

	// Settings holds the cutoff the balance path consults.
	Settings *settings.Manager

	// Bus carries the log events the report phases emit.
	Bus *events.Bus
}
