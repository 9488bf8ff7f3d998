package mock

import (
	"context"

	"github.com/fwojciec/plss"
)

var _ plss.PropertyService = (*PropertyService)(nil)

// PropertyService is a mock implementation of plss.PropertyService.
type PropertyService struct {
	CreatePropertyFn func(ctx context.Context, property *plss.Property) error
	FindPropertiesFn func(ctx context.Context, filter plss.PropertyFilter) ([]*plss.Property, error)
}

func (s *PropertyService) CreateProperty(ctx context.Context, property *plss.Property) error {
	return s.CreatePropertyFn(ctx, property)
}

func (s *PropertyService) FindProperties(ctx context.Context, filter plss.PropertyFilter) ([]*plss.Property, error) {
	return s.FindPropertiesFn(ctx, filter)
}
