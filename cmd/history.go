package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// timeRanges maps the CLI's short names to the API's time_range values.
var timeRanges = map[string]string{
	"short":  "short_term",
	"medium": "medium_term",
	"long":   "long_term",
}

func resolveRange(cmd *cli.Command) (string, error) {
	name := cmd.String("range")
	if name == "" {
		name = "medium"
	}
	tr, ok := timeRanges[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown time range %q, use short, medium or long", shared.ErrInvalidArgument, name)
	}
	return tr, nil
}

// Recent lists recently played tracks.
func (r *Runner) Recent(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	tracks, err := svc.RecentlyPlayed(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}
	return r.writePlainln("%s", formatter.TrackList(tracks))
}

// TopTracks lists the user's top tracks for a time range.
func (r *Runner) TopTracks(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	timeRange, err := resolveRange(cmd)
	if err != nil {
		return err
	}

	r.logger.Debugf("fetching top tracks for %s", timeRange)

	tracks, err := svc.TopTracks(ctx, timeRange, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}
	return r.writePlainln("%s", formatter.TrackList(tracks))
}

// TopArtists lists the user's top artists for a time range.
func (r *Runner) TopArtists(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	timeRange, err := resolveRange(cmd)
	if err != nil {
		return err
	}

	artists, err := svc.TopArtists(ctx, timeRange, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(artists, true)
	}

	for i, a := range artists {
		r.writePlainln("%3d. %s", i+1, formatter.Artist(a))
	}
	return nil
}
