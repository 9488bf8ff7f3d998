package mock

import (
	"context"

	"github.com/fwojciec/plss"
)

var _ plss.WellLocator = (*WellLocator)(nil)

// WellLocator is a mock implementation of plss.WellLocator.
type WellLocator struct {
	LocateWellFn func(ctx context.Context, apiNumber string) (*plss.Coordinate, error)
}

func (l *WellLocator) LocateWell(ctx context.Context, apiNumber string) (*plss.Coordinate, error) {
	return l.LocateWellFn(ctx, apiNumber)
}

var _ plss.CoordinateResolver = (*CoordinateResolver)(nil)

// CoordinateResolver is a mock implementation of plss.CoordinateResolver.
type CoordinateResolver struct {
	ResolveCoordinateFn func(ctx context.Context, req plss.CoordinateRequest) *plss.CoordinateResult
}

func (r *CoordinateResolver) ResolveCoordinate(ctx context.Context, req plss.CoordinateRequest) *plss.CoordinateResult {
	return r.ResolveCoordinateFn(ctx, req)
}
