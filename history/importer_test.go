package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"eurojackpot/events"
	"eurojackpot/models"
	"eurojackpot/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves results keyed by draw date
type fakeFetcher struct {
	mu      sync.Mutex
	results map[string]*models.Draw
	errs    map[string]error
	calls   []string
}

func (f *fakeFetcher) FetchDraw(ctx context.Context, date time.Time) (*models.Draw, error) {
	key := date.Format(dateLayout)

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if draw, ok := f.results[key]; ok {
		return draw, nil
	}
	return nil, fmt.Errorf("%w %s", ErrNoDraw, key)
}

func resultFor(date string) *models.Draw {
	return &models.Draw{Date: date, Numbers: []int{5, 8, 21, 37, 46}, StarNumbers: []int{6, 8}}
}

type importerMocks struct {
	repo      *service.MockDrawRepository
	txRepo    *service.MockDrawRepository
	uow       *service.MockUnitOfWork
	factory   *service.MockUnitOfWorkFactory
	publisher *service.MockEventPublisher
}

func newImporterMocks() *importerMocks {
	m := &importerMocks{
		repo:      new(service.MockDrawRepository),
		txRepo:    new(service.MockDrawRepository),
		uow:       new(service.MockUnitOfWork),
		factory:   new(service.MockUnitOfWorkFactory),
		publisher: new(service.MockEventPublisher),
	}
	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", mock.Anything).Return(nil)
	m.uow.On("DrawRepository").Return(m.txRepo)
	m.uow.On("EventBus").Return(m.publisher)
	m.uow.On("Rollback").Return(nil).Maybe()
	return m
}

func TestImporter_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newImporterMocks()
	fetcher := &fakeFetcher{
		results: map[string]*models.Draw{
			"2012-03-23": resultFor("2012-03-23"),
			"2012-03-30": resultFor("2012-03-30"),
		},
		errs: map[string]error{
			"2012-04-03": errors.New("HTTP 503"),
		},
	}

	m.repo.On("StoredDates", ctx, day(2012, time.March, 23), day(2012, time.April, 3)).Return(nil, nil)
	m.txRepo.On("Upsert", ctx, []models.Draw{*resultFor("2012-03-23"), *resultFor("2012-03-30")}).Return(2, nil)
	m.publisher.On("Publish", events.DrawsImportedEvent{
		Imported:   2,
		Skipped:    1,
		LatestDate: day(2012, time.March, 30),
	}).Return()
	m.uow.On("Commit").Return(nil)

	importer := NewImporter(fetcher, m.repo, m.factory, 0)
	result, err := importer.Run(ctx, day(2012, time.March, 23), day(2012, time.April, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, day(2012, time.March, 30), result.LatestDate)
	assert.Equal(t, []string{"2012-03-23", "2012-03-27", "2012-03-30", "2012-04-03"}, fetcher.calls)

	m.repo.AssertExpectations(t)
	m.txRepo.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestImporter_Run_FetchesOnlyMissingDates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newImporterMocks()
	fetcher := &fakeFetcher{results: map[string]*models.Draw{"2012-03-30": resultFor("2012-03-30")}}

	m.repo.On("StoredDates", ctx, mock.Anything, mock.Anything).
		Return([]time.Time{day(2012, time.March, 23), day(2012, time.March, 27)}, nil)
	m.txRepo.On("Upsert", ctx, mock.Anything).Return(1, nil)
	m.publisher.On("Publish", mock.AnythingOfType("events.DrawsImportedEvent")).Return()
	m.uow.On("Commit").Return(nil)

	importer := NewImporter(fetcher, m.repo, m.factory, 0)
	result, err := importer.Run(ctx, day(2012, time.March, 23), day(2012, time.March, 30))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, []string{"2012-03-30"}, fetcher.calls)
}

func TestImporter_Run_RetriesFailedDateOnNextRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	since, until := day(2012, time.March, 23), day(2012, time.March, 30)
	results := map[string]*models.Draw{
		"2012-03-23": resultFor("2012-03-23"),
		"2012-03-27": resultFor("2012-03-27"),
		"2012-03-30": resultFor("2012-03-30"),
	}

	// first run: the middle date fails while a later one succeeds
	first := newImporterMocks()
	var stored []time.Time
	first.repo.On("StoredDates", ctx, since, until).Return(nil, nil)
	first.txRepo.On("Upsert", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			for _, draw := range args.Get(1).([]models.Draw) {
				date, err := time.Parse(dateLayout, draw.Date)
				require.NoError(t, err)
				stored = append(stored, date)
			}
		}).
		Return(2, nil)
	first.publisher.On("Publish", mock.AnythingOfType("events.DrawsImportedEvent")).Return()
	first.uow.On("Commit").Return(nil)

	flaky := &fakeFetcher{
		results: results,
		errs:    map[string]error{"2012-03-27": errors.New("HTTP 503")},
	}
	result, err := NewImporter(flaky, first.repo, first.factory, 0).Run(ctx, since, until)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Equal(t, []time.Time{day(2012, time.March, 23), day(2012, time.March, 30)}, stored)

	// second run: only the failed date is requested again
	second := newImporterMocks()
	second.repo.On("StoredDates", ctx, since, until).Return(stored, nil)
	second.txRepo.On("Upsert", ctx, []models.Draw{*resultFor("2012-03-27")}).Return(1, nil)
	second.publisher.On("Publish", mock.AnythingOfType("events.DrawsImportedEvent")).Return()
	second.uow.On("Commit").Return(nil)

	healthy := &fakeFetcher{results: results}
	result, err = NewImporter(healthy, second.repo, second.factory, 0).Run(ctx, since, until)
	require.NoError(t, err)

	assert.Equal(t, []string{"2012-03-27"}, healthy.calls)
	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Failed)
	second.txRepo.AssertExpectations(t)
}

func TestMissingDates(t *testing.T) {
	t.Parallel()

	dates := DrawDates(day(2024, time.May, 7), day(2024, time.May, 17))
	stored := []time.Time{day(2024, time.May, 10), day(2020, time.January, 3)}

	assert.Equal(t, []time.Time{
		day(2024, time.May, 7),
		day(2024, time.May, 14),
		day(2024, time.May, 17),
	}, missingDates(dates, stored))
	assert.Empty(t, missingDates(nil, stored))
}

func TestImporter_Run_NothingNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newImporterMocks()
	fetcher := &fakeFetcher{}

	m.repo.On("StoredDates", ctx, mock.Anything, mock.Anything).Return(nil, nil)

	importer := NewImporter(fetcher, m.repo, m.factory, 0)
	result, err := importer.Run(ctx, day(2024, time.May, 7), day(2024, time.May, 10))
	require.NoError(t, err)

	assert.Zero(t, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	m.factory.AssertNotCalled(t, "Create")
}

func TestImporter_Run_StoreFailureRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newImporterMocks()
	fetcher := &fakeFetcher{results: map[string]*models.Draw{"2024-05-10": resultFor("2024-05-10")}}

	m.repo.On("StoredDates", ctx, mock.Anything, mock.Anything).Return(nil, nil)
	m.txRepo.On("Upsert", ctx, mock.Anything).Return(0, errors.New("connection reset"))

	importer := NewImporter(fetcher, m.repo, m.factory, 0)
	_, err := importer.Run(ctx, day(2024, time.May, 10), day(2024, time.May, 10))
	require.Error(t, err)

	m.uow.AssertCalled(t, "Rollback")
	m.uow.AssertNotCalled(t, "Commit")
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestImporter_Run_StoredDatesError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newImporterMocks()
	m.repo.On("StoredDates", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewImporter(&fakeFetcher{}, m.repo, m.factory, 0).Run(ctx, day(2024, time.May, 10), day(2024, time.May, 10))
	assert.Error(t, err)
}

func TestImporter_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	m := newImporterMocks()
	m.repo.On("StoredDates", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	fetcher := &fakeFetcher{}
	importer := NewImporter(fetcher, m.repo, m.factory, 1)
	cancel()

	_, err := importer.Run(ctx, day(2024, time.May, 7), day(2024, time.May, 31))
	assert.ErrorIs(t, err, context.Canceled)
	m.factory.AssertNotCalled(t, "Create")
}
