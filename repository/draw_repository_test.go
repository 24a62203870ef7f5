package repository

import (
	"context"
	"testing"
	"time"

	"eurojackpot/events"
	"eurojackpot/models"
	"eurojackpot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	first := time.Date(2012, 3, 23, 0, 0, 0, 0, time.UTC)

	t.Run("empty store", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		latest, err := repo.LatestDate(ctx)
		require.NoError(t, err)
		assert.Nil(t, latest)

		draws, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, draws)
	})

	t.Run("upsert and read back in date order", func(t *testing.T) {
		draws := testutil.CreateTestDraws(first, 3)
		reversed := []models.Draw{draws[2], draws[0], draws[1]}

		written, err := repo.Upsert(ctx, reversed)
		require.NoError(t, err)
		assert.Equal(t, 3, written)

		stored, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 3)
		assert.Equal(t, "2012-03-23", stored[0].Date)
		assert.Equal(t, "2012-03-30", stored[1].Date)
		assert.Equal(t, "2012-04-06", stored[2].Date)
		assert.Equal(t, draws[0].Raw(), stored[0])

		latest, err := repo.LatestDate(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, first.AddDate(0, 0, 14), latest.UTC())
	})

	t.Run("upsert replaces existing date", func(t *testing.T) {
		corrected := testutil.CreateTestDraw(first, []int{5, 8, 21, 37, 46}, []int{6, 8})

		_, err := repo.Upsert(ctx, []models.Draw{corrected})
		require.NoError(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		stored, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, corrected.Raw(), stored[0])
	})

	t.Run("stored dates within range", func(t *testing.T) {
		dates, err := repo.StoredDates(ctx, first, first.AddDate(0, 0, 10))
		require.NoError(t, err)
		assert.Equal(t, []time.Time{first, first.AddDate(0, 0, 7)}, dates)

		dates, err = repo.StoredDates(ctx, first.AddDate(1, 0, 0), first.AddDate(2, 0, 0))
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := repo.Upsert(ctx, []models.Draw{{Date: "23/03/2012", Numbers: []int{1, 2, 3, 4, 5}, StarNumbers: []int{1, 2}}})
		assert.Error(t, err)
	})

	t.Run("schema rejects short draws", func(t *testing.T) {
		_, err := repo.Upsert(ctx, []models.Draw{testutil.CreateTestDraw(first.AddDate(1, 0, 0), []int{1, 2}, []int{1, 2})})
		assert.Error(t, err)
	})
}

func TestUnitOfWork(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	bus := events.NewBus()
	received := make(chan events.DrawsImportedEvent, 2)
	bus.Subscribe(events.EventTypeDrawsImported, func(ctx context.Context, event events.Event) {
		received <- event.(events.DrawsImportedEvent)
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)
	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()
	start := time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("rollback discards writes and events", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))

		_, err := uow.DrawRepository().Upsert(ctx, testutil.CreateTestDraws(start, 2))
		require.NoError(t, err)
		uow.EventBus().Publish(events.DrawsImportedEvent{Imported: 2})

		require.NoError(t, uow.Rollback())

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		select {
		case <-received:
			t.Fatal("event delivered after rollback")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("commit persists writes and flushes events", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		assert.Error(t, uow.Begin(ctx))

		_, err := uow.DrawRepository().Upsert(ctx, testutil.CreateTestDraws(start, 4))
		require.NoError(t, err)
		uow.EventBus().Publish(events.DrawsImportedEvent{Imported: 4})

		require.NoError(t, uow.Commit())
		assert.Error(t, uow.Commit())
		assert.NoError(t, uow.Rollback())

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)

		select {
		case event := <-received:
			assert.Equal(t, 4, event.Imported)
		case <-time.After(2 * time.Second):
			t.Fatal("event was not flushed after commit")
		}
	})

	t.Run("repository requires Begin", func(t *testing.T) {
		uow := factory.Create()
		assert.Panics(t, func() { uow.DrawRepository() })
	})
}
