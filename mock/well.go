package mock

import (
	"context"

	"github.com/fwojciec/plss"
)

var _ plss.WellService = (*WellService)(nil)

// WellService is a mock implementation of plss.WellService.
type WellService struct {
	CreateWellFn    func(ctx context.Context, well *plss.Well) error
	FindWellByAPIFn func(ctx context.Context, apiNumber string) (*plss.Well, error)
	FindWellsFn     func(ctx context.Context, filter plss.WellFilter) ([]*plss.Well, error)
}

func (s *WellService) CreateWell(ctx context.Context, well *plss.Well) error {
	return s.CreateWellFn(ctx, well)
}

func (s *WellService) FindWellByAPI(ctx context.Context, apiNumber string) (*plss.Well, error) {
	return s.FindWellByAPIFn(ctx, apiNumber)
}

func (s *WellService) FindWells(ctx context.Context, filter plss.WellFilter) ([]*plss.Well, error) {
	return s.FindWellsFn(ctx, filter)
}
