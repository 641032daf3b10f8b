package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCascade_RunsStepsConcurrently(t *testing.T) {
	c := NewCascade(slog.New(slog.DiscardHandler))

	var running atomic.Int32
	var peak atomic.Int32
	step := func() {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
	}

	res := c.Run(context.Background(), "folder", "f1",
		func(context.Context) error { step(); return nil },
		func(context.Context) (int, error) { step(); return 3, nil },
	)

	assert.NoError(t, res.Err())
	assert.True(t, res.RecordRemoved)
	assert.Equal(t, 3, res.NotesUpdated)
	assert.Equal(t, int32(2), peak.Load(), "both steps in flight at once")
}

func TestCascade_FailedStepDoesNotCancelSibling(t *testing.T) {
	c := NewCascade(slog.New(slog.DiscardHandler))

	res := c.Run(context.Background(), "tag", "t1",
		func(context.Context) error { return errors.New("remove failed") },
		func(ctx context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 2, ctx.Err()
		},
	)

	assert.False(t, res.RecordRemoved)
	assert.NoError(t, res.UpdateErr)
	assert.Equal(t, 2, res.NotesUpdated)
	assert.True(t, res.Partial())
}

func TestCascade_LogsPartialState(t *testing.T) {
	var buf bytes.Buffer
	c := NewCascade(slog.New(slog.NewJSONHandler(&buf, nil)))

	res := c.Run(context.Background(), "folder", "f1",
		func(context.Context) error { return nil },
		func(context.Context) (int, error) { return 0, errors.New("disk full") },
	)

	assert.True(t, res.Partial())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "folder removed, dependents not updated")
	assert.Contains(t, buf.String(), res.OperationID)
}

func TestCascadeResult_Err(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")

	assert.NoError(t, CascadeResult{}.Err())
	assert.ErrorIs(t, CascadeResult{RemoveErr: a, UpdateErr: b}.Err(), a)
	assert.ErrorIs(t, CascadeResult{RemoveErr: a, UpdateErr: b}.Err(), b)
	assert.False(t, CascadeResult{RemoveErr: a, UpdateErr: b}.Partial())
}
