package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/services"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Info shows detailed information for any catalog item by URI.
func (r *Runner) Info(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	raw := cmd.StringArg("uri")
	if raw == "" {
		return fmt.Errorf("%w: usage: sp info <spotify:type:id>", shared.ErrMissingArgument)
	}

	uri, err := services.ParseURI(raw)
	if err != nil {
		return err
	}

	useJSON := cmd.Bool("json")

	switch uri.Type {
	case services.TypeTrack:
		track, err := svc.TrackInfo(ctx, uri.ID)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(track, true)
		}
		return r.writePlainln("%s", formatter.Track(*track))

	case services.TypeAlbum:
		album, err := svc.AlbumInfo(ctx, uri.ID)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(album, true)
		}
		return r.writePlainln("%s", formatter.AlbumDetail(album))

	case services.TypeArtist:
		artist, err := svc.ArtistInfo(ctx, uri.ID)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(artist, true)
		}
		return r.writePlainln("%s", formatter.ArtistDetail(artist))

	case services.TypePlaylist:
		playlist, err := svc.PlaylistInfo(ctx, uri.ID)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(playlist, true)
		}
		return r.writePlainln("%s", formatter.PlaylistDetail(playlist))
	}

	return fmt.Errorf("%w: unknown URI type %q", shared.ErrInvalidArgument, uri.Type)
}
