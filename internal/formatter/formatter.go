// package formatter renders tracks, albums, artists, playlists, devices, and
// queues as plain text for command output
package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/desertthunder/sp/internal/services"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// follower counts render with thousands separators
var counts = message.NewPrinter(language.English)

// Duration renders milliseconds as m:ss. Zero durations render empty.
func Duration(ms int) string {
	if ms <= 0 {
		return ""
	}
	s := ms / 1000
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Track renders a single track line: Name -- Artist [m:ss] (ID: xxx)
func Track(t services.Track) string {
	parts := []string{fmt.Sprintf("%s -- %s", t.Name, t.Artists.String())}
	if d := Duration(t.DurationMS); d != "" {
		parts = append(parts, fmt.Sprintf("[%s]", d))
	}
	parts = append(parts, fmt.Sprintf("(ID: %s)", t.ID))
	return strings.Join(parts, " ")
}

// NowPlaying renders the currently playing track or a placeholder.
func NowPlaying(t *services.Track) string {
	if t == nil {
		return "Nothing playing."
	}
	status := "Paused"
	if t.IsPlaying != nil && *t.IsPlaying {
		status = "Playing"
	}
	return fmt.Sprintf("%s: %s -- %s (ID: %s)", status, t.Name, t.Artists.String(), t.ID)
}

// TrackList renders a numbered track listing.
func TrackList(tracks []services.Track) string {
	if len(tracks) == 0 {
		return "No tracks."
	}
	var buf bytes.Buffer
	for i, t := range tracks {
		fmt.Fprintf(&buf, "%3d. %s\n", i+1, Track(t))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Artist renders a single artist line with genres and follower count when known.
func Artist(a services.Artist) string {
	parts := []string{a.Name}
	if len(a.Genres) > 0 {
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(a.Genres, ", ")))
	}
	if a.Followers != nil {
		parts = append(parts, counts.Sprintf("(%d followers)", *a.Followers))
	}
	parts = append(parts, fmt.Sprintf("(ID: %s)", a.ID))
	return strings.Join(parts, " ")
}

// Album renders a single album line.
func Album(a services.Album) string {
	parts := []string{fmt.Sprintf("%s -- %s", a.Name, a.Artists.String())}
	if a.ReleaseDate != "" {
		parts = append(parts, fmt.Sprintf("[%s]", a.ReleaseDate))
	}
	if a.TotalTracks > 0 {
		parts = append(parts, fmt.Sprintf("(%d tracks)", a.TotalTracks))
	}
	parts = append(parts, fmt.Sprintf("(ID: %s)", a.ID))
	return strings.Join(parts, " ")
}

// Playlist renders a single playlist line.
func Playlist(p services.Playlist) string {
	owner := p.Owner
	if owner == "" {
		owner = "?"
	}
	return fmt.Sprintf("%s -- %s (%d tracks) (ID: %s)", p.Name, owner, p.TotalTracks, p.ID)
}

// Device renders a device line; the active device is starred.
func Device(d services.Device) string {
	active := " "
	if d.IsActive {
		active = "*"
	}
	return fmt.Sprintf("  %s %s (%s) vol:%d%%", active, d.Name, d.Type, d.VolumePercent)
}

// SearchResults renders grouped search hits with section headers.
func SearchResults(results *services.SearchResults) string {
	var buf bytes.Buffer

	if results.Tracks != nil {
		buf.WriteString("--- TRACKS ---\n")
		for i, t := range results.Tracks {
			fmt.Fprintf(&buf, "  %d. %s\n", i+1, Track(t))
		}
		buf.WriteString("\n")
	}
	if results.Albums != nil {
		buf.WriteString("--- ALBUMS ---\n")
		for i, a := range results.Albums {
			fmt.Fprintf(&buf, "  %d. %s\n", i+1, Album(a))
		}
		buf.WriteString("\n")
	}
	if results.Artists != nil {
		buf.WriteString("--- ARTISTS ---\n")
		for i, a := range results.Artists {
			fmt.Fprintf(&buf, "  %d. %s\n", i+1, Artist(a))
		}
		buf.WriteString("\n")
	}
	if results.Playlists != nil {
		buf.WriteString("--- PLAYLISTS ---\n")
		for i, p := range results.Playlists {
			fmt.Fprintf(&buf, "  %d. %s\n", i+1, Playlist(p))
		}
		buf.WriteString("\n")
	}

	return strings.TrimRight(buf.String(), "\n")
}

// Queue renders the current track followed by the numbered queue.
func Queue(q *services.Queue) string {
	var buf bytes.Buffer

	if q.CurrentlyPlaying != nil {
		fmt.Fprintf(&buf, "Now: %s\n", Track(*q.CurrentlyPlaying))
	} else {
		buf.WriteString("Now: Nothing playing\n")
	}
	buf.WriteString("\n")

	if len(q.Queue) == 0 {
		buf.WriteString("Queue is empty.")
		return buf.String()
	}

	buf.WriteString("Queue:\n")
	for i, t := range q.Queue {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, Track(t))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// ArtistDetail renders an artist with top tracks and albums.
func ArtistDetail(a *services.Artist) string {
	var buf bytes.Buffer
	buf.WriteString(Artist(*a))

	if len(a.TopTracks) > 0 {
		buf.WriteString("\n\nTop Tracks:\n")
		for i, t := range a.TopTracks {
			fmt.Fprintf(&buf, "  %d. %s\n", i+1, Track(t))
		}
	}
	if len(a.Albums) > 0 {
		buf.WriteString("\nAlbums:\n")
		for i, alb := range a.Albums {
			fmt.Fprintf(&buf, "  %d. %s\n", i+1, Album(alb))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// AlbumDetail renders an album with its track listing.
func AlbumDetail(a *services.Album) string {
	var buf bytes.Buffer
	buf.WriteString(Album(*a))
	for i, t := range a.Tracks {
		fmt.Fprintf(&buf, "\n  %d. %s", i+1, Track(t))
	}
	return buf.String()
}

// PlaylistDetail renders a playlist with its description and track listing.
func PlaylistDetail(p *services.Playlist) string {
	var buf bytes.Buffer
	buf.WriteString(Playlist(*p))
	if p.Description != "" {
		fmt.Fprintf(&buf, "\n  %s", p.Description)
	}
	if len(p.Tracks) > 0 {
		buf.WriteString("\n")
		for i, t := range p.Tracks {
			fmt.Fprintf(&buf, "\n  %d. %s", i+1, Track(t))
		}
	}
	return buf.String()
}
