package services

import (
	"fmt"
	"strings"

	"github.com/desertthunder/sp/internal/shared"
)

// Item types addressable by URI.
const (
	TypeTrack    = "track"
	TypeAlbum    = "album"
	TypeArtist   = "artist"
	TypePlaylist = "playlist"
)

// URI identifies a catalog item in spotify:type:id form.
type URI struct {
	Type string
	ID   string
}

// String reassembles the canonical spotify:type:id form.
func (u URI) String() string {
	return fmt.Sprintf("spotify:%s:%s", u.Type, u.ID)
}

// ParseURI parses a spotify:type:id string.
func ParseURI(raw string) (URI, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 || parts[0] != "spotify" {
		return URI{}, fmt.Errorf("%w: invalid URI %q, expected spotify:type:id", shared.ErrInvalidArgument, raw)
	}

	uri := URI{Type: parts[1], ID: parts[2]}
	switch uri.Type {
	case TypeTrack, TypeAlbum, TypeArtist, TypePlaylist:
	default:
		return URI{}, fmt.Errorf("%w: unknown URI type %q", shared.ErrInvalidArgument, uri.Type)
	}

	if uri.ID == "" {
		return URI{}, fmt.Errorf("%w: URI %q has empty ID", shared.ErrInvalidArgument, raw)
	}

	return uri, nil
}

// TrackURI builds a track URI from a bare ID. IDs that are already URIs pass through.
func TrackURI(id string) string {
	if strings.HasPrefix(id, "spotify:") {
		return id
	}
	return URI{Type: TypeTrack, ID: id}.String()
}
