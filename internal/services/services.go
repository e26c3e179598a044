// package services defines interface Service for the Spotify Web API
package services

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/oauth2"
)

// Service defines the operations the CLI performs against a music streaming provider.
//
// Each method maps onto a single remote call, except the info methods for
// artists which aggregate a short fixed sequence of calls.
type Service interface {
	// Name returns the name of the service (e.g., "Spotify")
	Name() string

	// CurrentUser retrieves the authenticated user's profile.
	CurrentUser(ctx context.Context) (*User, error)

	// NowPlaying returns the currently playing track, or nil when nothing is playing.
	NowPlaying(ctx context.Context) (*Track, error)

	// Play resumes playback (empty uri) or plays the given URI.
	// Track URIs play that single track; album/playlist/artist URIs play the context.
	Play(ctx context.Context, uri string) error

	// Pause pauses playback on the active device.
	Pause(ctx context.Context) error

	// Next skips to the next track.
	Next(ctx context.Context) error

	// Previous returns to the previous track.
	Previous(ctx context.Context) error

	// SetVolume sets playback volume as a percentage (0-100).
	SetVolume(ctx context.Context, percent int) error

	// Devices lists available playback devices.
	Devices(ctx context.Context) ([]Device, error)

	// Queue returns the current playback queue.
	Queue(ctx context.Context) (*Queue, error)

	// QueueAdd appends a track URI to the playback queue.
	QueueAdd(ctx context.Context, uri string) error

	// Search performs a catalog search across the given item types.
	Search(ctx context.Context, query string, types []string, limit int) (*SearchResults, error)

	// TrackInfo retrieves detailed track information.
	TrackInfo(ctx context.Context, id string) (*Track, error)

	// AlbumInfo retrieves detailed album information including its tracks.
	AlbumInfo(ctx context.Context, id string) (*Album, error)

	// ArtistInfo retrieves detailed artist information with top tracks and albums.
	ArtistInfo(ctx context.Context, id string) (*Artist, error)

	// PlaylistInfo retrieves detailed playlist information including its tracks.
	PlaylistInfo(ctx context.Context, id string) (*Playlist, error)

	// Playlists lists the user's playlists.
	Playlists(ctx context.Context, limit int) ([]Playlist, error)

	// PlaylistTracks lists the tracks in a playlist.
	PlaylistTracks(ctx context.Context, id string) ([]Track, error)

	// PlaylistAdd adds tracks to a playlist by track ID.
	PlaylistAdd(ctx context.Context, id string, trackIDs []string) error

	// PlaylistRemove removes all occurrences of the given tracks from a playlist.
	PlaylistRemove(ctx context.Context, id string, trackIDs []string) error

	// PlaylistCreate creates a new playlist for the current user.
	PlaylistCreate(ctx context.Context, name string, public bool, description string) (*Playlist, error)

	// SavedTracks lists the user's saved (liked) tracks.
	SavedTracks(ctx context.Context, limit int) ([]Track, error)

	// SavedAlbums lists the user's saved albums.
	SavedAlbums(ctx context.Context, limit int) ([]Album, error)

	// SaveTracks adds tracks to the user's library.
	SaveTracks(ctx context.Context, ids []string) error

	// SaveAlbums adds albums to the user's library.
	SaveAlbums(ctx context.Context, ids []string) error

	// UnsaveTracks removes tracks from the user's library.
	UnsaveTracks(ctx context.Context, ids []string) error

	// UnsaveAlbums removes albums from the user's library.
	UnsaveAlbums(ctx context.Context, ids []string) error

	// RecentlyPlayed lists recently played tracks.
	RecentlyPlayed(ctx context.Context, limit int) ([]Track, error)

	// TopTracks lists the user's top tracks for a time range (short_term, medium_term, long_term).
	TopTracks(ctx context.Context, timeRange string, limit int) ([]Track, error)

	// TopArtists lists the user's top artists for a time range.
	TopArtists(ctx context.Context, timeRange string, limit int) ([]Artist, error)
}

// OAuthService extends Service for providers that use server-side OAuth2 flows.
type OAuthService interface {
	Service

	// GetAuthURL returns the authorization URL for the given state token.
	GetAuthURL(state string) string

	// GetOAuthConfig returns the underlying OAuth2 config for callback handling.
	GetOAuthConfig() *oauth2.Config

	// OAuthenticate installs a token (typically from the cache or a fresh exchange).
	OAuthenticate(ctx context.Context, token *oauth2.Token) error
}

// User represents the authenticated account.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Artist represents an artist reference or, with detail fields set, a full artist.
//
// Marshals as a bare name string when only the name is known, matching the
// compact track listing shape, and as an object otherwise.
type Artist struct {
	Name       string   `json:"name"`
	ID         string   `json:"id"`
	Genres     []string `json:"genres,omitempty"`
	Followers  *int     `json:"followers,omitempty"`
	Popularity *int     `json:"popularity,omitempty"`
	TopTracks  []Track  `json:"top_tracks,omitempty"`
	Albums     []Album  `json:"albums,omitempty"`
}

// MarshalJSON emits a bare string for name-only references.
func (a Artist) MarshalJSON() ([]byte, error) {
	if a.ID == "" && a.Genres == nil && a.Followers == nil {
		return json.Marshal(a.Name)
	}

	type artistAlias Artist
	return json.Marshal(artistAlias(a))
}

// ArtistList holds a track or album's artists.
//
// A single artist marshals as that artist alone rather than a one-element list.
type ArtistList []Artist

func (l ArtistList) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}
	return json.Marshal([]Artist(l))
}

// String joins artist names for plain-text output.
func (l ArtistList) String() string {
	if len(l) == 0 {
		return "Unknown"
	}
	names := make([]string, len(l))
	for i, a := range l {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// Track represents a track in either compact or detailed form.
type Track struct {
	Name        string     `json:"name"`
	ID          string     `json:"id"`
	Artists     ArtistList `json:"artist"`
	IsPlaying   *bool      `json:"is_playing,omitempty"`
	Album       *Album     `json:"album,omitempty"`
	TrackNumber int        `json:"track_number,omitempty"`
	DurationMS  int        `json:"duration_ms,omitempty"`
}

// Album represents an album in either compact or detailed form.
type Album struct {
	Name        string     `json:"name"`
	ID          string     `json:"id"`
	Artists     ArtistList `json:"artist"`
	ReleaseDate string     `json:"release_date,omitempty"`
	TotalTracks int        `json:"total_tracks,omitempty"`
	Genres      []string   `json:"genres,omitempty"`
	Tracks      []Track    `json:"tracks,omitempty"`
}

// Playlist represents a playlist summary or, with Tracks set, playlist detail.
type Playlist struct {
	Name        string  `json:"name"`
	ID          string  `json:"id"`
	Owner       string  `json:"owner"`
	TotalTracks int     `json:"total_tracks"`
	UserIsOwner *bool   `json:"user_is_owner,omitempty"`
	Description string  `json:"description,omitempty"`
	Tracks      []Track `json:"tracks,omitempty"`
}

// Device represents a Spotify Connect playback device.
type Device struct {
	Name          string `json:"name"`
	ID            string `json:"id"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent int    `json:"volume_percent"`
}

// Queue represents the current playback queue.
type Queue struct {
	CurrentlyPlaying *Track  `json:"currently_playing"`
	Queue            []Track `json:"queue"`
}

// SearchResults holds search hits keyed by item type.
//
// Only the requested types are populated, so unrequested keys are absent
// from JSON output.
type SearchResults struct {
	Tracks    []Track    `json:"tracks,omitempty"`
	Albums    []Album    `json:"albums,omitempty"`
	Artists   []Artist   `json:"artists,omitempty"`
	Playlists []Playlist `json:"playlists,omitempty"`
}
