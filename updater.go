package borehole

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Borehole holds the depth fields of a borehole that depend on its geometry.
// MD fields are inputs, TVD fields are derived by Updater. nil means unknown.
type Borehole struct {
	ID int

	TotalDepth            *float64
	TopBedrockFreshMD     *float64
	TopBedrockWeatheredMD *float64

	TotalDepthTVD          *float64
	TopBedrockFreshTVD     *float64
	TopBedrockWeatheredTVD *float64
}

// GeometrySource returns the stations of a borehole.
type GeometrySource func(ctx context.Context, boreholeID int) (Stations, error)

// Updater recomputes the TVD fields of boreholes whenever their MD fields or
// their geometry change.
type Updater struct {
	log     *slog.Logger
	workers int
}

// NewUpdater creates an Updater. workers bounds the number of boreholes
// processed concurrently by UpdateAll; values below 1 mean one.
func NewUpdater(log *slog.Logger, workers int) *Updater {
	if log == nil {
		log = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Updater{log: log, workers: workers}
}

// UpdateTVD sets the TVD fields of b from its MD fields and stations.
func (u *Updater) UpdateTVD(ctx context.Context, b *Borehole, stations Stations) {
	b.TotalDepthTVD = u.convert(ctx, b.ID, "total_depth", b.TotalDepth, stations)
	b.TopBedrockFreshTVD = u.convert(ctx, b.ID, "top_bedrock_fresh", b.TopBedrockFreshMD, stations)
	b.TopBedrockWeatheredTVD = u.convert(ctx, b.ID, "top_bedrock_weathered", b.TopBedrockWeatheredMD, stations)
}

func (u *Updater) convert(ctx context.Context, id int, field string, md *float64, stations Stations) *float64 {
	tvd := stations.TVDFromMDOrDefault(md)
	if tvd == nil && md != nil {
		u.log.DebugContext(ctx, "Depth not computable from geometry",
			"borehole", id, "field", field, "md", *md, "stations", len(stations))
	}
	return tvd
}

// UpdateAll runs UpdateTVD for every borehole, fetching each geometry from
// source. It stops at the first source error or when ctx is canceled.
func (u *Updater) UpdateAll(ctx context.Context, boreholes []*Borehole, source GeometrySource) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for _, b := range boreholes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stations, err := source(ctx, b.ID)
			if err != nil {
				u.log.ErrorContext(ctx, "Failed to fetch geometry", "borehole", b.ID, "error", err)
				return fmt.Errorf("failed to fetch geometry of borehole %d: %w", b.ID, err)
			}
			u.UpdateTVD(ctx, b, stations)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	u.log.InfoContext(ctx, "Borehole depths updated", "boreholes", len(boreholes))
	return nil
}
