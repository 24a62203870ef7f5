package service

import (
	"context"
	"fmt"

	"eurojackpot/dataset"
	"eurojackpot/models"

	log "github.com/sirupsen/logrus"
)

// Draw source names
const (
	SourceBundled  = "bundled"
	SourceDatabase = "database"
)

// BundledSource serves the draw history embedded in the binary
type BundledSource struct{}

// NewBundledSource creates a source backed by the embedded dataset
func NewBundledSource() *BundledSource {
	return &BundledSource{}
}

func (s *BundledSource) LoadDraws(ctx context.Context) ([]models.RawDraw, error) {
	draws, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled draws: %w", err)
	}
	return draws, nil
}

func (s *BundledSource) Name() string {
	return SourceBundled
}

// RepositorySource serves draws from the draw store. When the store is empty
// the fallback source is used instead, if one is set.
type RepositorySource struct {
	repo     DrawRepository
	fallback DrawSource
}

// NewRepositorySource creates a source backed by repo
func NewRepositorySource(repo DrawRepository, fallback DrawSource) *RepositorySource {
	return &RepositorySource{repo: repo, fallback: fallback}
}

func (s *RepositorySource) LoadDraws(ctx context.Context) ([]models.RawDraw, error) {
	draws, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored draws: %w", err)
	}

	if len(draws) == 0 && s.fallback != nil {
		log.WithField("fallback", s.fallback.Name()).Warn("Draw store is empty, using fallback source")
		return s.fallback.LoadDraws(ctx)
	}
	return draws, nil
}

func (s *RepositorySource) Name() string {
	return SourceDatabase
}
