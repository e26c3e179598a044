package formatter

import (
	"strings"
	"testing"

	"github.com/desertthunder/sp/internal/services"
)

func artists(names ...string) services.ArtistList {
	list := make(services.ArtistList, len(names))
	for i, name := range names {
		list[i] = services.Artist{Name: name}
	}
	return list
}

func TestDuration(t *testing.T) {
	cases := []struct {
		name string
		ms   int
		want string
	}{
		{"zero renders empty", 0, ""},
		{"negative renders empty", -100, ""},
		{"under a minute", 59000, "0:59"},
		{"pads seconds", 61000, "1:01"},
		{"long track", 605000, "10:05"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Duration(tc.ms); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTrack(t *testing.T) {
	t.Run("without duration", func(t *testing.T) {
		track := services.Track{Name: "Song", ID: "t1", Artists: artists("Band")}

		if got := Track(track); got != "Song -- Band (ID: t1)" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("with duration", func(t *testing.T) {
		track := services.Track{Name: "Song", ID: "t1", Artists: artists("Band"), DurationMS: 125000}

		if got := Track(track); got != "Song -- Band [2:05] (ID: t1)" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("joins multiple artists", func(t *testing.T) {
		track := services.Track{Name: "Song", ID: "t1", Artists: artists("A", "B")}

		if got := Track(track); !strings.Contains(got, "A, B") {
			t.Errorf("expected joined artists, got %q", got)
		}
	})

	t.Run("unknown artist placeholder", func(t *testing.T) {
		track := services.Track{Name: "Song", ID: "t1"}

		if got := Track(track); !strings.Contains(got, "Unknown") {
			t.Errorf("expected Unknown placeholder, got %q", got)
		}
	})
}

func TestNowPlaying(t *testing.T) {
	t.Run("nil track", func(t *testing.T) {
		if got := NowPlaying(nil); got != "Nothing playing." {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("playing track", func(t *testing.T) {
		playing := true
		track := &services.Track{Name: "Song", ID: "t1", Artists: artists("Band"), IsPlaying: &playing}

		if got := NowPlaying(track); got != "Playing: Song -- Band (ID: t1)" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("paused track", func(t *testing.T) {
		paused := false
		track := &services.Track{Name: "Song", ID: "t1", Artists: artists("Band"), IsPlaying: &paused}

		if got := NowPlaying(track); !strings.HasPrefix(got, "Paused: ") {
			t.Errorf("expected Paused prefix, got %q", got)
		}
	})
}

func TestTrackList(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if got := TrackList(nil); got != "No tracks." {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("numbers entries with width 3", func(t *testing.T) {
		tracks := []services.Track{
			{Name: "One", ID: "t1", Artists: artists("A")},
			{Name: "Two", ID: "t2", Artists: artists("B")},
		}

		got := TrackList(tracks)
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[0] != "  1. One -- A (ID: t1)" {
			t.Errorf("unexpected first line %q", lines[0])
		}
		if lines[1] != "  2. Two -- B (ID: t2)" {
			t.Errorf("unexpected second line %q", lines[1])
		}
	})
}

func TestArtist(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		if got := Artist(services.Artist{Name: "Band", ID: "a1"}); got != "Band (ID: a1)" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("with genres and followers", func(t *testing.T) {
		count := 42
		artist := services.Artist{Name: "Band", ID: "a1", Genres: []string{"punk", "rock"}, Followers: &count}

		got := Artist(artist)
		if got != "Band [punk, rock] (42 followers) (ID: a1)" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("large follower counts are grouped", func(t *testing.T) {
		count := 1234567
		artist := services.Artist{Name: "Band", ID: "a1", Followers: &count}

		got := Artist(artist)
		if got != "Band (1,234,567 followers) (ID: a1)" {
			t.Errorf("unexpected output %q", got)
		}
	})
}

func TestAlbum(t *testing.T) {
	album := services.Album{
		Name:        "LP",
		ID:          "al1",
		Artists:     artists("Band"),
		ReleaseDate: "2004-09-21",
		TotalTracks: 12,
	}

	got := Album(album)
	if got != "LP -- Band [2004-09-21] (12 tracks) (ID: al1)" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPlaylist(t *testing.T) {
	t.Run("with owner", func(t *testing.T) {
		playlist := services.Playlist{Name: "Mix", ID: "p1", Owner: "me", TotalTracks: 3}

		if got := Playlist(playlist); got != "Mix -- me (3 tracks) (ID: p1)" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("missing owner placeholder", func(t *testing.T) {
		playlist := services.Playlist{Name: "Mix", ID: "p1"}

		if got := Playlist(playlist); !strings.Contains(got, "-- ?") {
			t.Errorf("expected placeholder owner, got %q", got)
		}
	})
}

func TestDevice(t *testing.T) {
	t.Run("active device is starred", func(t *testing.T) {
		device := services.Device{Name: "Desk", Type: "Computer", IsActive: true, VolumePercent: 80}

		if got := Device(device); got != "  * Desk (Computer) vol:80%" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("inactive device is unstarred", func(t *testing.T) {
		device := services.Device{Name: "Phone", Type: "Smartphone", VolumePercent: 45}

		if got := Device(device); got != "    Phone (Smartphone) vol:45%" {
			t.Errorf("unexpected output %q", got)
		}
	})
}

func TestSearchResults(t *testing.T) {
	t.Run("renders only populated sections", func(t *testing.T) {
		results := &services.SearchResults{
			Tracks: []services.Track{{Name: "Song", ID: "t1", Artists: artists("Band")}},
		}

		got := SearchResults(results)
		if !strings.Contains(got, "--- TRACKS ---") {
			t.Errorf("expected TRACKS header, got %q", got)
		}
		if strings.Contains(got, "--- ALBUMS ---") {
			t.Errorf("unexpected ALBUMS header in %q", got)
		}
	})

	t.Run("renders every requested section", func(t *testing.T) {
		results := &services.SearchResults{
			Tracks:    []services.Track{{Name: "Song", ID: "t1", Artists: artists("Band")}},
			Albums:    []services.Album{{Name: "LP", ID: "al1", Artists: artists("Band")}},
			Artists:   []services.Artist{{Name: "Band", ID: "a1"}},
			Playlists: []services.Playlist{{Name: "Mix", ID: "p1", Owner: "me"}},
		}

		got := SearchResults(results)
		for _, header := range []string{"--- TRACKS ---", "--- ALBUMS ---", "--- ARTISTS ---", "--- PLAYLISTS ---"} {
			if !strings.Contains(got, header) {
				t.Errorf("expected %s in %q", header, got)
			}
		}
	})
}

func TestQueue(t *testing.T) {
	t.Run("empty queue", func(t *testing.T) {
		queue := &services.Queue{}

		got := Queue(queue)
		if !strings.Contains(got, "Now: Nothing playing") {
			t.Errorf("expected placeholder, got %q", got)
		}
		if !strings.Contains(got, "Queue is empty.") {
			t.Errorf("expected empty notice, got %q", got)
		}
	})

	t.Run("current track and queued tracks", func(t *testing.T) {
		queue := &services.Queue{
			CurrentlyPlaying: &services.Track{Name: "Now", ID: "n1", Artists: artists("A")},
			Queue: []services.Track{
				{Name: "Next", ID: "x1", Artists: artists("B")},
			},
		}

		got := Queue(queue)
		if !strings.Contains(got, "Now: Now -- A (ID: n1)") {
			t.Errorf("expected current track, got %q", got)
		}
		if !strings.Contains(got, "  1. Next -- B (ID: x1)") {
			t.Errorf("expected queued track, got %q", got)
		}
	})
}

func TestArtistDetail(t *testing.T) {
	count := 7
	artist := &services.Artist{
		Name:      "Band",
		ID:        "a1",
		Genres:    []string{"punk"},
		Followers: &count,
		TopTracks: []services.Track{{Name: "Hit", ID: "t1", Artists: artists("Band")}},
		Albums:    []services.Album{{Name: "LP", ID: "al1", Artists: artists("Band")}},
	}

	got := ArtistDetail(artist)
	if !strings.Contains(got, "Top Tracks:") {
		t.Errorf("expected top tracks section, got %q", got)
	}
	if !strings.Contains(got, "Albums:") {
		t.Errorf("expected albums section, got %q", got)
	}
	if !strings.Contains(got, "1. Hit -- Band (ID: t1)") {
		t.Errorf("expected top track entry, got %q", got)
	}
}

func TestAlbumDetail(t *testing.T) {
	album := &services.Album{
		Name:    "LP",
		ID:      "al1",
		Artists: artists("Band"),
		Tracks: []services.Track{
			{Name: "One", ID: "t1", Artists: artists("Band")},
			{Name: "Two", ID: "t2", Artists: artists("Band")},
		},
	}

	got := AlbumDetail(album)
	if !strings.Contains(got, "1. One -- Band (ID: t1)") {
		t.Errorf("expected track listing, got %q", got)
	}
	if !strings.Contains(got, "2. Two -- Band (ID: t2)") {
		t.Errorf("expected track listing, got %q", got)
	}
}

func TestPlaylistDetail(t *testing.T) {
	playlist := &services.Playlist{
		Name:        "Mix",
		ID:          "p1",
		Owner:       "me",
		TotalTracks: 1,
		Description: "road trip songs",
		Tracks:      []services.Track{{Name: "Song", ID: "t1", Artists: artists("Band")}},
	}

	got := PlaylistDetail(playlist)
	if !strings.Contains(got, "road trip songs") {
		t.Errorf("expected description, got %q", got)
	}
	if !strings.Contains(got, "1. Song -- Band (ID: t1)") {
		t.Errorf("expected track listing, got %q", got)
	}
}
