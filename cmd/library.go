package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// SavedTracks lists the user's liked tracks.
func (r *Runner) SavedTracks(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	tracks, err := svc.SavedTracks(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}
	return r.writePlainln("%s", formatter.TrackList(tracks))
}

// SavedAlbums lists the user's saved albums.
func (r *Runner) SavedAlbums(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	albums, err := svc.SavedAlbums(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(albums, true)
	}

	for i, a := range albums {
		r.writePlainln("%3d. %s", i+1, formatter.Album(a))
	}
	return nil
}

// libraryIDs extracts the comma-separated ID argument for save/unsave commands.
func libraryIDs(cmd *cli.Command, usage string) ([]string, error) {
	ids := shared.SplitIDs(cmd.StringArg("ids"))
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: usage: %s", shared.ErrMissingArgument, usage)
	}
	return ids, nil
}

// SaveTracks likes tracks by ID.
func (r *Runner) SaveTracks(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	ids, err := libraryIDs(cmd, "sp save track <ids>")
	if err != nil {
		return err
	}

	if err := svc.SaveTracks(ctx, ids); err != nil {
		return err
	}
	return r.writePlainln("Saved %d track(s).", len(ids))
}

// SaveAlbums saves albums by ID.
func (r *Runner) SaveAlbums(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	ids, err := libraryIDs(cmd, "sp save album <ids>")
	if err != nil {
		return err
	}

	if err := svc.SaveAlbums(ctx, ids); err != nil {
		return err
	}
	return r.writePlainln("Saved %d album(s).", len(ids))
}

// UnsaveTracks removes tracks from the library.
func (r *Runner) UnsaveTracks(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	ids, err := libraryIDs(cmd, "sp unsave track <ids>")
	if err != nil {
		return err
	}

	if err := svc.UnsaveTracks(ctx, ids); err != nil {
		return err
	}
	return r.writePlainln("Removed %d track(s).", len(ids))
}

// UnsaveAlbums removes albums from the library.
func (r *Runner) UnsaveAlbums(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	ids, err := libraryIDs(cmd, "sp unsave album <ids>")
	if err != nil {
		return err
	}

	if err := svc.UnsaveAlbums(ctx, ids); err != nil {
		return err
	}
	return r.writePlainln("Removed %d album(s).", len(ids))
}
