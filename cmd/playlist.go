package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Playlists lists the user's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	limit := cmd.Int("limit")
	r.logger.Debugf("listing playlists with limit %d", limit)

	playlists, err := svc.Playlists(ctx, limit)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	for i, p := range playlists {
		r.writePlainln("%3d. %s", i+1, formatter.Playlist(p))
	}
	return nil
}

// Playlist dispatches the playlist subsurface:
//
//	sp playlist <id>                 show tracks
//	sp playlist <id> add <ids>       add tracks
//	sp playlist <id> remove <ids>    remove tracks
//	sp playlist create "<name>"      create a playlist
func (r *Runner) Playlist(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	id := cmd.StringArg("id")
	action := cmd.StringArg("action")
	idsArg := cmd.StringArg("ids")

	if id == "" {
		return fmt.Errorf("%w: usage: sp playlist <id> [add|remove <ids>] or sp playlist create \"<name>\"", shared.ErrMissingArgument)
	}

	if id == "create" {
		name := action
		if name == "" {
			return fmt.Errorf("%w: usage: sp playlist create \"<name>\" [--private] [--desc \"...\"]", shared.ErrMissingArgument)
		}

		playlist, err := svc.PlaylistCreate(ctx, name, !cmd.Bool("private"), cmd.String("desc"))
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(playlist, true)
		}
		return r.writePlainln("Created: %s", formatter.Playlist(*playlist))
	}

	switch action {
	case "":
		tracks, err := svc.PlaylistTracks(ctx, id)
		if err != nil {
			return err
		}
		if cmd.Bool("json") {
			return r.writeJSON(tracks, true)
		}
		return r.writePlainln("%s", formatter.TrackList(tracks))

	case "add":
		ids := shared.SplitIDs(idsArg)
		if len(ids) == 0 {
			return fmt.Errorf("%w: usage: sp playlist <id> add <ids>", shared.ErrMissingArgument)
		}
		if err := svc.PlaylistAdd(ctx, id, ids); err != nil {
			return err
		}
		return r.writePlainln("Added %d track(s).", len(ids))

	case "remove":
		ids := shared.SplitIDs(idsArg)
		if len(ids) == 0 {
			return fmt.Errorf("%w: usage: sp playlist <id> remove <ids>", shared.ErrMissingArgument)
		}
		if err := svc.PlaylistRemove(ctx, id, ids); err != nil {
			return err
		}
		return r.writePlainln("Removed %d track(s).", len(ids))
	}

	return fmt.Errorf("%w: unknown playlist action %q, use 'add' or 'remove'", shared.ErrInvalidArgument, action)
}
