package services

import (
	"context"
	"sort"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

// FiltersService exposes the filter vocabularies: static color/category lists
// and the distinct reference/draw values currently present in the dataset.
type FiltersService interface {
	AvailableColors() []string
	AvailableCategories() []string
	References(ctx context.Context) ([]string, error)
	Draws(ctx context.Context) ([]string, error)
}

type filtersService struct {
	log    *logger.Logger
	wovens repos.WovenRepo
}

func NewFiltersService(log *logger.Logger, wovens repos.WovenRepo) FiltersService {
	return &filtersService{
		log:    log.With("service", "FiltersService"),
		wovens: wovens,
	}
}

func (s *filtersService) AvailableColors() []string {
	return sortedCopy(domain.AvailableColors)
}

func (s *filtersService) AvailableCategories() []string {
	return sortedCopy(domain.AvailableCategories)
}

func (s *filtersService) References(ctx context.Context) ([]string, error) {
	refs, err := s.wovens.DistinctReferences(ctx, nil)
	if err != nil {
		s.log.Error("distinct references failed", "error", err)
		return nil, apierr.Unavailable(err)
	}
	if refs == nil {
		refs = []string{}
	}
	return refs, nil
}

func (s *filtersService) Draws(ctx context.Context) ([]string, error) {
	draws, err := s.wovens.DistinctDraws(ctx, nil)
	if err != nil {
		s.log.Error("distinct draws failed", "error", err)
		return nil, apierr.Unavailable(err)
	}
	if draws == nil {
		draws = []string{}
	}
	return draws, nil
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
