package service

import (
	"context"

	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/repository"
	"github.com/rs/zerolog"
)

type PropertyService struct {
	properties   PropertyStore
	defaultLimit int
	logger       *zerolog.Logger
}

func NewPropertyService(properties PropertyStore, defaultLimit int, logger *zerolog.Logger) *PropertyService {
	if defaultLimit <= 0 {
		defaultLimit = repository.DefaultLimit
	}
	return &PropertyService{properties: properties, defaultLimit: defaultLimit, logger: logger}
}

// Search runs a property search. A zero limit means the default limit.
func (s *PropertyService) Search(ctx context.Context, criteria repository.PropertySearchCriteria, limit int) ([]model.PropertySearchResult, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}

	results, err := s.properties.Search(ctx, criteria, limit)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("limit", limit).
		Int("results", len(results)).
		Msg("property search")

	return results, nil
}

// SearchRaw parses string filters, as found in a query string, and runs
// the search.
func (s *PropertyService) SearchRaw(ctx context.Context, filters map[string]string, limit int) ([]model.PropertySearchResult, error) {
	criteria, err := repository.ParseSearchCriteria(filters)
	if err != nil {
		return nil, err
	}
	return s.Search(ctx, criteria, limit)
}

// Create adds a property from column values.
func (s *PropertyService) Create(ctx context.Context, fields map[string]any) (*model.Property, error) {
	property, err := s.properties.AddProperty(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("property_id", property.ID).
		Int64("owner_id", property.OwnerID).
		Msg("property created")

	return property, nil
}
