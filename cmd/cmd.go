// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Output JSON",
	}
}

func limitFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of results",
		Value: value,
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authenticate with Spotify using OAuth2",
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show cached token state and account",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Remove the cached token",
				Action: r.AuthLogout,
			},
		},
	}
}

// Playback commands

func nowCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "now",
		Usage:  "Show the currently playing track",
		Flags:  []cli.Flag{jsonFlag()},
		Action: r.Now,
	}
}

func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Resume playback or play a URI",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "uri"},
		},
		Action: r.Play,
	}
}

func pauseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "pause",
		Usage:  "Pause playback",
		Action: r.Pause,
	}
}

func skipCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "skip",
		Usage: "Skip forward n tracks (default 1)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "n"},
		},
		Action: r.Skip,
	}
}

func prevCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "prev",
		Usage:  "Go to the previous track",
		Action: r.Prev,
	}
}

func volumeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "volume",
		Usage: "Set volume (0-100)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "level"},
		},
		Action: r.Volume,
	}
}

func devicesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "devices",
		Usage:  "List available playback devices",
		Flags:  []cli.Flag{jsonFlag()},
		Action: r.Devices,
	}
}

// queueCommand shows the queue by default; `queue add` appends a URI.
func queueCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "queue",
		Usage:  "Show the playback queue",
		Flags:  []cli.Flag{jsonFlag()},
		Action: r.QueueShow,
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a track URI to the queue",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "uri"},
				},
				Action: r.QueueAdd,
			},
		},
	}
}

func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "Item types: track, album, artist, playlist (comma-combined)",
				Value: "track",
			},
			limitFlag(10),
			jsonFlag(),
		},
		Action: r.Search,
	}
}

func infoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show details for any item by URI (spotify:type:id)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "uri"},
		},
		Flags:  []cli.Flag{jsonFlag()},
		Action: r.Info,
	}
}

func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "playlists",
		Usage:  "List your playlists",
		Flags:  []cli.Flag{limitFlag(50), jsonFlag()},
		Action: r.Playlists,
	}
}

// playlistCommand dispatches on positional arguments to preserve the
// `sp playlist <id> [add|remove <ids>]` and `sp playlist create "<name>"`
// surface.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Show or modify a playlist",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
			&cli.StringArg{Name: "action"},
			&cli.StringArg{Name: "ids"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "private",
				Usage: "Create the playlist as private",
			},
			&cli.StringFlag{
				Name:  "desc",
				Usage: "Playlist description (create only)",
			},
			jsonFlag(),
		},
		Action: r.Playlist,
	}
}

// Library commands

func savedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "saved",
		Usage: "List saved tracks or albums",
		Commands: []*cli.Command{
			{
				Name:   "tracks",
				Usage:  "Liked tracks",
				Flags:  []cli.Flag{limitFlag(20), jsonFlag()},
				Action: r.SavedTracks,
			},
			{
				Name:   "albums",
				Usage:  "Saved albums",
				Flags:  []cli.Flag{limitFlag(20), jsonFlag()},
				Action: r.SavedAlbums,
			},
		},
	}
}

func saveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "Save tracks or albums to your library",
		Commands: []*cli.Command{
			{
				Name:  "track",
				Usage: "Like tracks (comma-separated IDs)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "ids"},
				},
				Action: r.SaveTracks,
			},
			{
				Name:  "album",
				Usage: "Save albums (comma-separated IDs)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "ids"},
				},
				Action: r.SaveAlbums,
			},
		},
	}
}

func unsaveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "unsave",
		Usage: "Remove tracks or albums from your library",
		Commands: []*cli.Command{
			{
				Name:  "track",
				Usage: "Unlike tracks (comma-separated IDs)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "ids"},
				},
				Action: r.UnsaveTracks,
			},
			{
				Name:  "album",
				Usage: "Unsave albums (comma-separated IDs)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "ids"},
				},
				Action: r.UnsaveAlbums,
			},
		},
	}
}

// Listening history commands

func recentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "recent",
		Usage:  "Recently played tracks",
		Flags:  []cli.Flag{limitFlag(20), jsonFlag()},
		Action: r.Recent,
	}
}

func rangeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "range",
		Usage: "Time range: short (~4 weeks), medium (~6 months), long (years)",
		Value: "medium",
	}
}

func topCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "top",
		Usage: "Your top tracks or artists",
		Commands: []*cli.Command{
			{
				Name:   "tracks",
				Usage:  "Top tracks",
				Flags:  []cli.Flag{rangeFlag(), limitFlag(20), jsonFlag()},
				Action: r.TopTracks,
			},
			{
				Name:   "artists",
				Usage:  "Top artists",
				Flags:  []cli.Flag{rangeFlag(), limitFlag(20), jsonFlag()},
				Action: r.TopArtists,
			},
		},
	}
}

func pickCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "pick",
		Usage: "Interactively pick a track from search results and play it",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags:  []cli.Flag{limitFlag(20)},
		Action: r.Pick,
	}
}
