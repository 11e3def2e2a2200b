// Package turnover implements the pre-aggregated turnover cache: per
// (item, location) sums of signed movements up to a cutoff, with JSON
// persistence and period rollups for the balance computation.
package turnover

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Service computes and serves the turnover cache held in the repository's
// turnover bucket.
type Service struct {
	repo *repository.Repository
}

// New creates a turnover service over the repository.
func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// PairTurnover is a rolled-up debit/credit pair for one (item, location).
type PairTurnover struct {
	NomenclatureID string
	StorageID      string
	DebitTurnover  float64
	CreditTurnover float64
}

// Compute aggregates all movements in [1900-01-01, cutoff] per (item, location)
// pair and stores one cache record per pair with at least one movement. Existing
// records at the same cutoff are evicted first; records at other cutoffs stay.
func (s *Service) Compute(cutoff time.Time) error {
	kept := make([]mmodel.Entity, 0)

	for _, rec := range s.repo.TurnoversAll() {
		if !rec.PeriodEnd.Equal(cutoff) {
			kept = append(kept, rec)
		}
	}

	movements := s.repo.MovementsAll()
	calculatedAt := time.Now().UTC()

	for _, item := range s.repo.ItemsAll() {
		for _, location := range s.repo.LocationsAll() {
			var debit, credit float64

			seen := false

			for _, m := range movements {
				if m.Item.Code() != item.Code() || m.Location.Code() != location.Code() {
					continue
				}

				if m.Date.Before(mmodel.MinMovementDate) || m.Date.After(cutoff) {
					continue
				}

				seen = true

				if m.Quantity > 0 {
					debit += m.Quantity
				} else {
					credit += -m.Quantity
				}
			}

			if !seen {
				continue
			}

			kept = append(kept, &mmodel.TurnoverRecord{
				UniqueCode:     pkg.NewUniqueCode(),
				NomenclatureID: item.Code(),
				StorageID:      location.Code(),
				PeriodEnd:      cutoff,
				DebitTurnover:  debit,
				CreditTurnover: credit,
				CalculatedAt:   calculatedAt,
			})
		}
	}

	s.repo.SetAll(repository.Turnovers, kept)

	return nil
}

// CachedFor returns the cache records whose cutoff equals the given instant.
func (s *Service) CachedFor(cutoff time.Time) []*mmodel.TurnoverRecord {
	var out []*mmodel.TurnoverRecord

	for _, rec := range s.repo.TurnoversAll() {
		if rec.PeriodEnd.Equal(cutoff) {
			out = append(out, rec)
		}
	}

	return out
}

// ForPeriod rolls movements in (start, end] up per (item, location) pair,
// without touching the cache. Pairs without movements produce no entry.
func (s *Service) ForPeriod(start, end time.Time) ([]PairTurnover, error) {
	if start.After(end) {
		return nil, pkg.ValidateBusinessError(cn.ErrStartAfterEnd, "Turnover")
	}

	movements := s.repo.MovementsAll()

	var out []PairTurnover

	for _, item := range s.repo.ItemsAll() {
		for _, location := range s.repo.LocationsAll() {
			var debit, credit float64

			seen := false

			for _, m := range movements {
				if m.Item.Code() != item.Code() || m.Location.Code() != location.Code() {
					continue
				}

				if !m.Date.After(start) || m.Date.After(end) {
					continue
				}

				seen = true

				if m.Quantity > 0 {
					debit += m.Quantity
				} else {
					credit += -m.Quantity
				}
			}

			if !seen {
				continue
			}

			out = append(out, PairTurnover{
				NomenclatureID: item.Code(),
				StorageID:      location.Code(),
				DebitTurnover:  debit,
				CreditTurnover: credit,
			})
		}
	}

	return out, nil
}

// Save writes the whole cache bucket as a snapshot file.
func (s *Service) Save(path string) error {
	snapshot := mmodel.TurnoverSnapshot{
		ExportDate:    time.Now().UTC(),
		TurnoverCache: s.repo.TurnoversAll(),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return pkg.ValidateInternalError(err, "TurnoverCache")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pkg.UnprocessableOperationError{
			EntityType: "TurnoverCache",
			Code:       cn.ErrInvalidCacheFile.Error(),
			Title:      "Turnover Cache Not Saved",
			Message:    "The turnover cache snapshot could not be written: " + err.Error(),
			Err:        err,
		}
	}

	return nil
}

// Load replaces the cache wholesale from a snapshot file. A missing file is not
// an error; the first return reports whether a snapshot was loaded.
func (s *Service) Load(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, pkg.ValidateBusinessError(cn.ErrInvalidCacheFile, "TurnoverCache", err)
	}

	var snapshot mmodel.TurnoverSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return false, pkg.ValidateBusinessError(cn.ErrInvalidCacheFile, "TurnoverCache", err)
	}

	records := make([]mmodel.Entity, 0, len(snapshot.TurnoverCache))
	for _, rec := range snapshot.TurnoverCache {
		records = append(records, rec)
	}

	s.repo.SetAll(repository.Turnovers, records)

	return true, nil
}
