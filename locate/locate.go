// Package locate resolves documents to approximate coordinates through a
// chain of increasingly coarse strategies.
package locate

import (
	"context"
	"log/slog"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/fwojciec/plss"
)

// Compile-time interface verification.
var _ plss.CoordinateResolver = (*Resolver)(nil)

// Resolver tries, in order: a GIS lookup of the well, the section center
// computed from the TRS fields, and the county centroid. It returns nil
// when none applies.
type Resolver struct {
	// GIS is optional; without it the GIS tier is skipped.
	GIS plss.WellLocator

	Logger *slog.Logger
}

// ResolveCoordinate returns the most precise coordinate available.
func (r *Resolver) ResolveCoordinate(ctx context.Context, req plss.CoordinateRequest) *plss.CoordinateResult {
	log := r.logger().With("api", req.APINumber, "section", req.Section, "township", req.Township,
		"range", req.Range, "county", req.County)

	if c, ok := r.fromGIS(ctx, log, req.APINumber); ok {
		return r.result(log, c, plss.PrecisionGIS)
	}

	if loc, ok := location(req); ok {
		if c, ok := plss.ApproximateCoordinate(loc); ok {
			return r.result(log, c, plss.PrecisionTRSCalculated)
		}
	}
	log.Debug("trs tier skipped")

	if county := plss.NormalizeCounty(req.County); county != "" {
		if c, ok := plss.CountyCenter(county); ok {
			return r.result(log, c, plss.PrecisionCountyCenter)
		}
		log.Debug("county tier skipped", "reason", "unknown county")
	}

	log.Info("coordinate unresolved")
	return nil
}

func (r *Resolver) fromGIS(ctx context.Context, log *slog.Logger, api string) (plss.Coordinate, bool) {
	if r.GIS == nil || plss.NormalizeAPI(api) == "" {
		return plss.Coordinate{}, false
	}
	c, err := r.GIS.LocateWell(ctx, api)
	switch {
	case plss.ErrorCode(err) == plss.ENOTFOUND:
		log.Debug("gis tier missed", "reason", plss.ErrorMessage(err))
		return plss.Coordinate{}, false
	case err != nil:
		log.Warn("gis tier failed", "err", err)
		return plss.Coordinate{}, false
	case c == nil || !c.Valid():
		log.Debug("gis tier missed", "reason", "unusable coordinate")
		return plss.Coordinate{}, false
	}
	return *c, true
}

func (r *Resolver) result(log *slog.Logger, c plss.Coordinate, tier plss.PrecisionTier) *plss.CoordinateResult {
	res := &plss.CoordinateResult{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Precision: tier,
		Geohash:   geohash.Encode(c.Latitude, c.Longitude),
	}
	log.Info("coordinate resolved", "precision", tier, "lat", c.Latitude, "lng", c.Longitude)
	return res
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// location parses the request's TRS fields. An explicit meridian wins
// over the one implied by the county.
func location(req plss.CoordinateRequest) (plss.Location, bool) {
	section, ok := plss.ParseSection(req.Section)
	if !ok {
		return plss.Location{}, false
	}
	t, ok := plss.ParseTownship(req.Township)
	if !ok {
		return plss.Location{}, false
	}
	rng, ok := plss.ParseRange(req.Range)
	if !ok {
		return plss.Location{}, false
	}
	loc := plss.Location{Section: section, Township: t, Range: rng, County: plss.NormalizeCounty(req.County)}
	if m, ok := plss.ParseMeridian(req.Meridian); ok {
		loc.Meridian = m
	} else if m, ok := plss.RangeMeridian(req.Range); ok {
		loc.Meridian = m
	} else {
		loc.Meridian = plss.MeridianForCounty(loc.County)
	}
	return loc, true
}
