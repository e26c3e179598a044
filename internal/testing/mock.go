// package testing provides test doubles for the services package
package testing

import (
	"context"

	"github.com/desertthunder/sp/internal/services"
)

var _ services.Service = (*MockService)(nil)

// Call records a single invocation on the mock.
type Call struct {
	Method string
	Args   []any
}

// MockService implements [services.Service] with per-method function fields.
//
// Every invocation is recorded in Calls. Unset function fields return zero
// values so action-command tests only need to assert on the recorded calls.
type MockService struct {
	Calls []Call

	CurrentUserFunc    func(ctx context.Context) (*services.User, error)
	NowPlayingFunc     func(ctx context.Context) (*services.Track, error)
	PlayFunc           func(ctx context.Context, uri string) error
	PauseFunc          func(ctx context.Context) error
	NextFunc           func(ctx context.Context) error
	PreviousFunc       func(ctx context.Context) error
	SetVolumeFunc      func(ctx context.Context, percent int) error
	DevicesFunc        func(ctx context.Context) ([]services.Device, error)
	QueueFunc          func(ctx context.Context) (*services.Queue, error)
	QueueAddFunc       func(ctx context.Context, uri string) error
	SearchFunc         func(ctx context.Context, query string, types []string, limit int) (*services.SearchResults, error)
	TrackInfoFunc      func(ctx context.Context, id string) (*services.Track, error)
	AlbumInfoFunc      func(ctx context.Context, id string) (*services.Album, error)
	ArtistInfoFunc     func(ctx context.Context, id string) (*services.Artist, error)
	PlaylistInfoFunc   func(ctx context.Context, id string) (*services.Playlist, error)
	PlaylistsFunc      func(ctx context.Context, limit int) ([]services.Playlist, error)
	PlaylistTracksFunc func(ctx context.Context, id string) ([]services.Track, error)
	PlaylistAddFunc    func(ctx context.Context, id string, trackIDs []string) error
	PlaylistRemoveFunc func(ctx context.Context, id string, trackIDs []string) error
	PlaylistCreateFunc func(ctx context.Context, name string, public bool, description string) (*services.Playlist, error)
	SavedTracksFunc    func(ctx context.Context, limit int) ([]services.Track, error)
	SavedAlbumsFunc    func(ctx context.Context, limit int) ([]services.Album, error)
	SaveTracksFunc     func(ctx context.Context, ids []string) error
	SaveAlbumsFunc     func(ctx context.Context, ids []string) error
	UnsaveTracksFunc   func(ctx context.Context, ids []string) error
	UnsaveAlbumsFunc   func(ctx context.Context, ids []string) error
	RecentlyPlayedFunc func(ctx context.Context, limit int) ([]services.Track, error)
	TopTracksFunc      func(ctx context.Context, timeRange string, limit int) ([]services.Track, error)
	TopArtistsFunc     func(ctx context.Context, timeRange string, limit int) ([]services.Artist, error)
}

func (m *MockService) record(method string, args ...any) {
	m.Calls = append(m.Calls, Call{Method: method, Args: args})
}

// LastCall returns the most recent recorded call, or nil when none exist.
func (m *MockService) LastCall() *Call {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}

// CallCount returns how many times the named method was invoked.
func (m *MockService) CallCount(method string) int {
	count := 0
	for _, c := range m.Calls {
		if c.Method == method {
			count++
		}
	}
	return count
}

func (m *MockService) Name() string { return "Mock" }

func (m *MockService) CurrentUser(ctx context.Context) (*services.User, error) {
	m.record("CurrentUser")
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &services.User{ID: "mock", DisplayName: "Mock User"}, nil
}

func (m *MockService) NowPlaying(ctx context.Context) (*services.Track, error) {
	m.record("NowPlaying")
	if m.NowPlayingFunc != nil {
		return m.NowPlayingFunc(ctx)
	}
	return nil, nil
}

func (m *MockService) Play(ctx context.Context, uri string) error {
	m.record("Play", uri)
	if m.PlayFunc != nil {
		return m.PlayFunc(ctx, uri)
	}
	return nil
}

func (m *MockService) Pause(ctx context.Context) error {
	m.record("Pause")
	if m.PauseFunc != nil {
		return m.PauseFunc(ctx)
	}
	return nil
}

func (m *MockService) Next(ctx context.Context) error {
	m.record("Next")
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return nil
}

func (m *MockService) Previous(ctx context.Context) error {
	m.record("Previous")
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx)
	}
	return nil
}

func (m *MockService) SetVolume(ctx context.Context, percent int) error {
	m.record("SetVolume", percent)
	if m.SetVolumeFunc != nil {
		return m.SetVolumeFunc(ctx, percent)
	}
	return nil
}

func (m *MockService) Devices(ctx context.Context) ([]services.Device, error) {
	m.record("Devices")
	if m.DevicesFunc != nil {
		return m.DevicesFunc(ctx)
	}
	return []services.Device{}, nil
}

func (m *MockService) Queue(ctx context.Context) (*services.Queue, error) {
	m.record("Queue")
	if m.QueueFunc != nil {
		return m.QueueFunc(ctx)
	}
	return &services.Queue{}, nil
}

func (m *MockService) QueueAdd(ctx context.Context, uri string) error {
	m.record("QueueAdd", uri)
	if m.QueueAddFunc != nil {
		return m.QueueAddFunc(ctx, uri)
	}
	return nil
}

func (m *MockService) Search(ctx context.Context, query string, types []string, limit int) (*services.SearchResults, error) {
	m.record("Search", query, types, limit)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, types, limit)
	}
	return &services.SearchResults{}, nil
}

func (m *MockService) TrackInfo(ctx context.Context, id string) (*services.Track, error) {
	m.record("TrackInfo", id)
	if m.TrackInfoFunc != nil {
		return m.TrackInfoFunc(ctx, id)
	}
	return &services.Track{ID: id}, nil
}

func (m *MockService) AlbumInfo(ctx context.Context, id string) (*services.Album, error) {
	m.record("AlbumInfo", id)
	if m.AlbumInfoFunc != nil {
		return m.AlbumInfoFunc(ctx, id)
	}
	return &services.Album{ID: id}, nil
}

func (m *MockService) ArtistInfo(ctx context.Context, id string) (*services.Artist, error) {
	m.record("ArtistInfo", id)
	if m.ArtistInfoFunc != nil {
		return m.ArtistInfoFunc(ctx, id)
	}
	return &services.Artist{ID: id}, nil
}

func (m *MockService) PlaylistInfo(ctx context.Context, id string) (*services.Playlist, error) {
	m.record("PlaylistInfo", id)
	if m.PlaylistInfoFunc != nil {
		return m.PlaylistInfoFunc(ctx, id)
	}
	return &services.Playlist{ID: id}, nil
}

func (m *MockService) Playlists(ctx context.Context, limit int) ([]services.Playlist, error) {
	m.record("Playlists", limit)
	if m.PlaylistsFunc != nil {
		return m.PlaylistsFunc(ctx, limit)
	}
	return []services.Playlist{}, nil
}

func (m *MockService) PlaylistTracks(ctx context.Context, id string) ([]services.Track, error) {
	m.record("PlaylistTracks", id)
	if m.PlaylistTracksFunc != nil {
		return m.PlaylistTracksFunc(ctx, id)
	}
	return []services.Track{}, nil
}

func (m *MockService) PlaylistAdd(ctx context.Context, id string, trackIDs []string) error {
	m.record("PlaylistAdd", id, trackIDs)
	if m.PlaylistAddFunc != nil {
		return m.PlaylistAddFunc(ctx, id, trackIDs)
	}
	return nil
}

func (m *MockService) PlaylistRemove(ctx context.Context, id string, trackIDs []string) error {
	m.record("PlaylistRemove", id, trackIDs)
	if m.PlaylistRemoveFunc != nil {
		return m.PlaylistRemoveFunc(ctx, id, trackIDs)
	}
	return nil
}

func (m *MockService) PlaylistCreate(ctx context.Context, name string, public bool, description string) (*services.Playlist, error) {
	m.record("PlaylistCreate", name, public, description)
	if m.PlaylistCreateFunc != nil {
		return m.PlaylistCreateFunc(ctx, name, public, description)
	}
	return &services.Playlist{Name: name, Description: description}, nil
}

func (m *MockService) SavedTracks(ctx context.Context, limit int) ([]services.Track, error) {
	m.record("SavedTracks", limit)
	if m.SavedTracksFunc != nil {
		return m.SavedTracksFunc(ctx, limit)
	}
	return []services.Track{}, nil
}

func (m *MockService) SavedAlbums(ctx context.Context, limit int) ([]services.Album, error) {
	m.record("SavedAlbums", limit)
	if m.SavedAlbumsFunc != nil {
		return m.SavedAlbumsFunc(ctx, limit)
	}
	return []services.Album{}, nil
}

func (m *MockService) SaveTracks(ctx context.Context, ids []string) error {
	m.record("SaveTracks", ids)
	if m.SaveTracksFunc != nil {
		return m.SaveTracksFunc(ctx, ids)
	}
	return nil
}

func (m *MockService) SaveAlbums(ctx context.Context, ids []string) error {
	m.record("SaveAlbums", ids)
	if m.SaveAlbumsFunc != nil {
		return m.SaveAlbumsFunc(ctx, ids)
	}
	return nil
}

func (m *MockService) UnsaveTracks(ctx context.Context, ids []string) error {
	m.record("UnsaveTracks", ids)
	if m.UnsaveTracksFunc != nil {
		return m.UnsaveTracksFunc(ctx, ids)
	}
	return nil
}

func (m *MockService) UnsaveAlbums(ctx context.Context, ids []string) error {
	m.record("UnsaveAlbums", ids)
	if m.UnsaveAlbumsFunc != nil {
		return m.UnsaveAlbumsFunc(ctx, ids)
	}
	return nil
}

func (m *MockService) RecentlyPlayed(ctx context.Context, limit int) ([]services.Track, error) {
	m.record("RecentlyPlayed", limit)
	if m.RecentlyPlayedFunc != nil {
		return m.RecentlyPlayedFunc(ctx, limit)
	}
	return []services.Track{}, nil
}

func (m *MockService) TopTracks(ctx context.Context, timeRange string, limit int) ([]services.Track, error) {
	m.record("TopTracks", timeRange, limit)
	if m.TopTracksFunc != nil {
		return m.TopTracksFunc(ctx, timeRange, limit)
	}
	return []services.Track{}, nil
}

func (m *MockService) TopArtists(ctx context.Context, timeRange string, limit int) ([]services.Artist, error) {
	m.record("TopArtists", timeRange, limit)
	if m.TopArtistsFunc != nil {
		return m.TopArtistsFunc(ctx, timeRange, limit)
	}
	return []services.Artist{}, nil
}
