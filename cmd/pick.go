package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/services"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/desertthunder/sp/internal/ui"
	"github.com/urfave/cli/v3"
)

// Pick searches for tracks, presents an interactive picker, and plays the
// selected track.
func (r *Runner) Pick(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: usage: sp pick <query>", shared.ErrMissingArgument)
	}

	results, err := svc.Search(ctx, query, []string{"track"}, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if len(results.Tracks) == 0 {
		return r.writePlainln("No tracks found for %q.", query)
	}

	track, err := ui.PickTrack(fmt.Sprintf("Results for %q", query), results.Tracks)
	if err != nil {
		return err
	}
	if track == nil {
		r.logger.Debug("picker dismissed without a selection")
		return nil
	}

	if err := svc.Play(ctx, services.TrackURI(track.ID)); err != nil {
		return err
	}
	return r.writePlainln("Playing: %s", formatter.Track(*track))
}
