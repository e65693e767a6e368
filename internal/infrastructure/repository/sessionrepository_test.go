package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preparos/internal/domain/session"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
)

func newTestSession(t *testing.T, heldAt time.Time, participants int) *session.Session {
	t.Helper()
	s, err := session.NewSession(session.Details{
		HeldAt:       heldAt,
		Type:         session.TypeEscala,
		Facilitator:  "Pedro",
		Participants: participants,
	}, nil)
	require.NoError(t, err)
	return s
}

// applyLines mirrors how a session save reconciles stored lines.
func applyLines(ctx context.Context, repo session.Repository, s *session.Session, desired []session.LineInput) error {
	diff := session.DiffLines(s.Lines(), desired)
	if err := repo.DeleteLines(ctx, diff.Delete); err != nil {
		return err
	}
	if err := repo.UpdateLines(ctx, diff.Update); err != nil {
		return err
	}
	return repo.InsertLines(ctx, s.ID(), diff.Insert)
}

func TestSessionRepository_LinesRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	s := newTestSession(t, day("2024-03-02").Add(23*time.Hour), 10)
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.InsertLines(ctx, s.ID(), []session.LineInput{
		{BatchID: 1, Quantity: qty("2")},
		{BatchID: 2, Quantity: qty("1.5")},
	}))

	loaded, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	require.Len(t, loaded.Lines(), 2)
	assert.True(t, loaded.HeldAt().Equal(s.HeldAt()))

	desired := []session.LineInput{
		{BatchID: 2, Quantity: qty("3")},
		{BatchID: 3, Quantity: qty("0.5")},
	}
	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		return applyLines(ctx, repo, loaded, desired)
	})
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	got := map[uint]string{}
	for _, l := range reloaded.Lines() {
		got[l.BatchID()] = l.Quantity().String()
	}
	assert.Equal(t, map[uint]string{2: "3", 3: "0.5"}, got)

	t.Run("saving the same lines again changes nothing", func(t *testing.T) {
		diff := session.DiffLines(reloaded.Lines(), desired)
		assert.True(t, diff.IsEmpty())
	})

	t.Run("duplicate batch line is a conflict", func(t *testing.T) {
		err := repo.InsertLines(ctx, s.ID(), []session.LineInput{{BatchID: 2, Quantity: qty("1")}})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("failed step rolls back", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := repo.DeleteLines(ctx, []uint{reloaded.Lines()[0].ID()}); err != nil {
				return err
			}
			return errors.WrapStep(session.StepInsertLines, errors.NewInternalError("boom"))
		})
		require.Error(t, err)
		step, ok := errors.FailedStep(err)
		assert.True(t, ok)
		assert.Equal(t, session.StepInsertLines, step)

		after, err := repo.GetByID(ctx, s.ID())
		require.NoError(t, err)
		assert.Len(t, after.Lines(), 2)
	})
}

func TestSessionRepository_ListByRange(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	// 2024-03-01 02:30 UTC is still February 29 in São Paulo.
	held := []time.Time{
		time.Date(2024, 3, 1, 2, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 3, 0, 0, 0, time.UTC),
	}
	for _, h := range held {
		require.NoError(t, repo.Create(ctx, newTestSession(t, h, 5)))
	}

	list, total, err := repo.List(ctx, session.ListFilter{
		From: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 4, 1, 3, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.True(t, list[0].HeldAt().Equal(held[2]))
	assert.True(t, list[1].HeldAt().Equal(held[1]))

	page, total, err := repo.List(ctx, session.ListFilter{Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, page, 1)
}

func TestSessionRepository_ListLinesByBatch(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	s := newTestSession(t, day("2024-03-02").Add(23*time.Hour), 8)
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.InsertLines(ctx, s.ID(), []session.LineInput{{BatchID: 7, Quantity: qty("2")}}))
	// orphan line left behind by a session that no longer exists
	require.NoError(t, repo.InsertLines(ctx, 999, []session.LineInput{{BatchID: 7, Quantity: qty("1")}}))

	lines, err := repo.ListLinesByBatch(ctx, 7)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.NotNil(t, lines[0].Session)
	assert.Equal(t, s.ID(), lines[0].Session.ID())
	assert.Equal(t, 8, lines[0].Session.Participants())
	assert.Equal(t, "Pedro", lines[0].Session.Facilitator())
	assert.Nil(t, lines[1].Session)
}

func TestSessionRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	s := newTestSession(t, day("2024-03-02"), 3)
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.InsertLines(ctx, s.ID(), []session.LineInput{{BatchID: 1, Quantity: qty("1")}}))

	require.NoError(t, repo.Delete(ctx, s.ID()))

	lines, err := repo.ListLines(ctx, []uint{s.ID()})
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, s.ID())))
}
