package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eurojackpot/events"
	"eurojackpot/models"
	"eurojackpot/service"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DrawFetcher retrieves the result of a single draw
type DrawFetcher interface {
	FetchDraw(ctx context.Context, date time.Time) (*models.Draw, error)
}

// ImportResult summarizes one import run
type ImportResult struct {
	Imported   int
	Skipped    int
	Failed     int
	LatestDate time.Time
}

// Importer pulls missing draws from the results service into the draw store
type Importer struct {
	fetcher    DrawFetcher
	drawRepo   service.DrawRepository
	uowFactory service.UnitOfWorkFactory
	limiter    *rate.Limiter
}

// NewImporter creates an importer that issues at most requestsPerSecond
// requests. A non-positive rate disables pacing.
func NewImporter(fetcher DrawFetcher, drawRepo service.DrawRepository, uowFactory service.UnitOfWorkFactory, requestsPerSecond float64) *Importer {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &Importer{
		fetcher:    fetcher,
		drawRepo:   drawRepo,
		uowFactory: uowFactory,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Run fetches every draw date in [since, until] that has no stored draw and
// stores the results in a single transaction. Dates without results are
// skipped and failed requests are logged and counted; both are requested
// again on the next run.
func (i *Importer) Run(ctx context.Context, since, until time.Time) (*ImportResult, error) {
	stored, err := i.drawRepo.StoredDates(ctx, truncateDay(since), truncateDay(until))
	if err != nil {
		return nil, fmt.Errorf("failed to get stored draw dates: %w", err)
	}

	dates := missingDates(DrawDates(since, until), stored)
	log.WithFields(log.Fields{
		"from":    since.Format(dateLayout),
		"until":   until.Format(dateLayout),
		"stored":  len(stored),
		"missing": len(dates),
	}).Info("Importing draw history")

	result := &ImportResult{}
	draws := make([]models.Draw, 0, len(dates))
	for _, date := range dates {
		if err := i.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("import interrupted: %w", err)
		}

		draw, err := i.fetcher.FetchDraw(ctx, date)
		switch {
		case err == nil:
			draws = append(draws, *draw)
			result.LatestDate = date
			log.WithFields(log.Fields{
				"date":        draw.Date,
				"numbers":     draw.Numbers,
				"starNumbers": draw.StarNumbers,
			}).Debug("Fetched draw")
		case ctx.Err() != nil:
			return nil, fmt.Errorf("import interrupted: %w", ctx.Err())
		case errors.Is(err, ErrNoDraw), errors.Is(err, ErrIncompleteDraw):
			result.Skipped++
			log.WithField("date", date.Format(dateLayout)).Debug("Skipping date without results")
		default:
			result.Failed++
			log.WithError(err).WithField("date", date.Format(dateLayout)).Warn("Failed to fetch draw")
		}
	}

	if len(draws) == 0 {
		return result, nil
	}

	imported, err := i.store(ctx, draws, result)
	if err != nil {
		return nil, err
	}
	result.Imported = imported

	log.WithFields(log.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"failed":   result.Failed,
		"latest":   result.LatestDate.Format(dateLayout),
	}).Info("Draw history imported")
	return result, nil
}

func (i *Importer) store(ctx context.Context, draws []models.Draw, result *ImportResult) (int, error) {
	uow := i.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	written, err := uow.DrawRepository().Upsert(ctx, draws)
	if err != nil {
		return 0, fmt.Errorf("failed to store draws: %w", err)
	}

	uow.EventBus().Publish(events.DrawsImportedEvent{
		Imported:   written,
		Skipped:    result.Skipped,
		LatestDate: result.LatestDate,
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return written, nil
}

// missingDates returns the dates that have no stored draw, keeping their order
func missingDates(dates, stored []time.Time) []time.Time {
	have := make(map[string]struct{}, len(stored))
	for _, date := range stored {
		have[date.Format(dateLayout)] = struct{}{}
	}

	missing := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		if _, ok := have[date.Format(dateLayout)]; !ok {
			missing = append(missing, date)
		}
	}
	return missing
}
