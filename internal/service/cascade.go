package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CascadeResult records what a cascading delete actually did.
// RemoveErr and UpdateErr are the outcomes of the two steps.
type CascadeResult struct {
	OperationID   string
	Kind          string
	TargetID      string
	RecordRemoved bool
	NotesUpdated  int
	RemoveErr     error
	UpdateErr     error
}

// Err joins the step errors; nil when both steps succeeded.
func (r CascadeResult) Err() error {
	return errors.Join(r.RemoveErr, r.UpdateErr)
}

// Partial reports whether exactly one step failed.
func (r CascadeResult) Partial() bool {
	return (r.RemoveErr == nil) != (r.UpdateErr == nil)
}

// Cascade runs the two steps of deleting a referenced record: removing the
// record and updating the notes that point at it. Both steps start together
// and Run waits for both to settle. Nothing is rolled back or retried.
type Cascade struct {
	logger *slog.Logger
}

// NewCascade creates a cascade coordinator.
func NewCascade(logger *slog.Logger) *Cascade {
	return &Cascade{logger: logger}
}

// Run executes remove and update concurrently for the kind/targetID pair.
func (c *Cascade) Run(
	ctx context.Context,
	kind, targetID string,
	remove func(context.Context) error,
	update func(context.Context) (int, error),
) CascadeResult {
	res := CascadeResult{
		OperationID: uuid.NewString(),
		Kind:        kind,
		TargetID:    targetID,
	}

	// A plain Group: a failing step must not cancel its sibling.
	var g errgroup.Group
	g.Go(func() error {
		res.RemoveErr = remove(ctx)
		res.RecordRemoved = res.RemoveErr == nil
		return res.RemoveErr
	})
	g.Go(func() error {
		res.NotesUpdated, res.UpdateErr = update(ctx)
		return res.UpdateErr
	})
	_ = g.Wait() // step errors are kept on res

	log := c.logger.With(
		"operation_id", res.OperationID,
		"kind", kind,
		"target_id", targetID,
		"notes_updated", res.NotesUpdated,
	)

	switch {
	case res.Err() == nil:
		log.Debug("cascade complete")
	case res.Partial() && res.RecordRemoved:
		log.Warn("cascade partially applied: "+kind+" removed, dependents not updated",
			"error", res.UpdateErr)
	case res.Partial():
		log.Warn("cascade partially applied: dependents updated, "+kind+" not removed",
			"error", res.RemoveErr)
	default:
		log.Error("cascade failed", "error", res.Err())
	}

	return res
}
