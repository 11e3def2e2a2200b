package command

import (
	"context"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
)

// DeleteReference checks dependencies through the bus and, when no subscriber
// vetoes, removes the entity from its bucket. A veto aborts the whole operation
// with the holder's identity in the error.
func (uc *UseCase) DeleteReference(ctx context.Context, kind, code string) error {
	logger := pkg.NewLoggerFromContext(ctx)

	bucket, err := parseReferenceKind(kind)
	if err != nil {
		return err
	}

	target := uc.Repo.Find(bucket, code)
	if target == nil {
		return pkg.ValidateBusinessError(cn.ErrEntityNotFound, string(bucket), code)
	}

	logger.Infof("Trying to remove %s %s", bucket, code)

	if err := uc.Bus.Fire(events.CheckDependencies, events.CheckDependenciesPayload{Target: target}); err != nil {
		logger.Infof("Removal of %s %s refused: %v", bucket, code, err)

		return err
	}

	if err := uc.Repo.Remove(bucket, target); err != nil {
		return pkg.ValidateBusinessError(err, string(bucket), code)
	}

	if err := uc.Bus.Fire(events.RemoveReference, events.ReferencePayload{Entity: target}); err != nil {
		// Undo the commit so the caller observes no mutation. The entity
		// rejoins at the end of its bucket.
		_ = uc.Repo.Append(bucket, target)

		logger.Errorf("Error notifying reference removal: %v", err)

		return err
	}

	logger.Infof("Successfully removed %s %s", bucket, code)

	return nil
}
