// Spotify Web API implementation of [Service]
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/sp/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// Requests per second the client paces itself to.
	requestsPerSecond = 10
)

// spotifyScopes covers playback, library, playlist, and history operations.
var spotifyScopes = []string{
	"user-library-read",
	"user-library-modify",
	"user-read-playback-state",
	"user-modify-playback-state",
	"user-read-currently-playing",
	"playlist-read-private",
	"playlist-read-collaborative",
	"playlist-modify-private",
	"playlist-modify-public",
	"user-top-read",
	"user-read-recently-played",
}

type followers struct {
	Total int `json:"total"`
}

// SpotifyUser represents a Spotify user profile.
type SpotifyUser struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Followers   followers `json:"followers"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	Album       SpotifyAlbum    `json:"album"`
	TrackNumber int             `json:"track_number"`
	DurationMS  int             `json:"duration_ms"`
	Explicit    bool            `json:"explicit"`
	Popularity  int             `json:"popularity"`
	URI         string          `json:"uri"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Genres     []string  `json:"genres"`
	Followers  followers `json:"followers"`
	Popularity int       `json:"popularity"`
	URI        string    `json:"uri"`
}

type albumTracks struct {
	Items []SpotifyTrack `json:"items"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	ReleaseDate string          `json:"release_date"`
	TotalTracks int             `json:"total_tracks"`
	Genres      []string        `json:"genres"`
	Tracks      albumTracks     `json:"tracks"`
	URI         string          `json:"uri"`
}

type owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type playlistTracks struct {
	Total int                    `json:"total"`
	Items []SpotifyPlaylistTrack `json:"items"`
}

// SpotifyPlaylist represents a Spotify playlist.
type SpotifyPlaylist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       owner          `json:"owner"`
	Public      bool           `json:"public"`
	Tracks      playlistTracks `json:"tracks"`
	URI         string         `json:"uri"`
}

// SpotifyPlaylistTrack represents a track within a playlist context.
type SpotifyPlaylistTrack struct {
	AddedAt string        `json:"added_at"`
	Track   *SpotifyTrack `json:"track"`
}

// SpotifyDevice represents a Spotify Connect device.
type SpotifyDevice struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent int    `json:"volume_percent"`
}

// SpotifyCurrentlyPlaying represents the playback state response.
type SpotifyCurrentlyPlaying struct {
	IsPlaying            bool          `json:"is_playing"`
	CurrentlyPlayingType string        `json:"currently_playing_type"`
	Item                 *SpotifyTrack `json:"item"`
}

// SpotifyQueue represents the playback queue response.
type SpotifyQueue struct {
	CurrentlyPlaying *SpotifyTrack  `json:"currently_playing"`
	Queue            []SpotifyTrack `json:"queue"`
}

type pagedTracks struct {
	Items []SpotifyTrack `json:"items"`
}

type pagedArtists struct {
	Items []SpotifyArtist `json:"items"`
}

type pagedAlbums struct {
	Items []SpotifyAlbum `json:"items"`
}

type pagedPlaylists struct {
	Items []SpotifyPlaylist `json:"items"`
}

type savedTrackItem struct {
	AddedAt string        `json:"added_at"`
	Track   *SpotifyTrack `json:"track"`
}

type savedAlbumItem struct {
	AddedAt string        `json:"added_at"`
	Album   *SpotifyAlbum `json:"album"`
}

type playHistoryItem struct {
	PlayedAt string        `json:"played_at"`
	Track    *SpotifyTrack `json:"track"`
}

// SpotifySearchResponse represents the /search response with per-type pages.
type SpotifySearchResponse struct {
	Tracks    *pagedTracks    `json:"tracks"`
	Albums    *pagedAlbums    `json:"albums"`
	Artists   *pagedArtists   `json:"artists"`
	Playlists *pagedPlaylists `json:"playlists"`
}

type spotifyAPIError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// SpotifyService implements [Service] against the Spotify Web API.
//
// Uses [oauth2] for authentication; expired access tokens refresh
// transparently through the token source and are written back to the cache.
type SpotifyService struct {
	config     *oauth2.Config
	token      *oauth2.Token
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	user       *SpotifyUser
}

// NewSpotifyService creates a new Spotify service with the given OAuth2 credentials.
func NewSpotifyService(credentials map[string]string) (*SpotifyService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("missing client_id in credentials")
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("missing client_secret in credentials")
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://127.0.0.1:8888/callback"
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       spotifyScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}

	return &SpotifyService{
		config:     config,
		httpClient: http.DefaultClient,
		baseURL:    spotifyBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// GetAuthURL returns the OAuth2 authorization URL for user login.
func (s *SpotifyService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// GetOAuthConfig returns the underlying OAuth2 config.
func (s *SpotifyService) GetOAuthConfig() *oauth2.Config {
	return s.config
}

// OAuthenticate installs the given token for subsequent requests.
func (s *SpotifyService) OAuthenticate(ctx context.Context, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: empty token", shared.ErrAuthFailed)
	}

	s.token = token
	s.httpClient = oauth2.NewClient(ctx, s.config.TokenSource(ctx, token))
	return nil
}

// AuthenticateFromCache loads the cached token and installs a refreshing,
// cache-persisting token source.
//
// Returns [shared.ErrNoToken] (wrapped) when no token has been cached yet.
func (s *SpotifyService) AuthenticateFromCache(ctx context.Context, cache *TokenCache) error {
	token, err := cache.Load()
	if err != nil {
		return err
	}

	s.token = token
	source := cache.WrapSource(s.config.TokenSource(ctx, token))
	s.httpClient = oauth2.NewClient(ctx, source)
	return nil
}

// doRequest performs an authenticated HTTP request against the API.
//
// A non-nil body is JSON-encoded; a non-nil result is decoded from the
// response. 204 responses leave result untouched.
func (s *SpotifyService) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	if s.token == nil {
		return fmt.Errorf("%w: run 'sp auth login' first", shared.ErrNotAuthenticated)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter interrupted: %w", err)
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return s.statusError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError maps API error responses onto sentinel errors, keeping the
// server's message when one is present.
func (s *SpotifyService) statusError(resp *http.Response) error {
	var apiErr spotifyAPIError
	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
		message = apiErr.Error.Message
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = shared.ErrTokenExpired
	case http.StatusForbidden:
		sentinel = shared.ErrAuthFailed
	case http.StatusNotFound:
		sentinel = shared.ErrNotFound
	case http.StatusTooManyRequests:
		sentinel = shared.ErrRateLimited
	default:
		sentinel = shared.ErrAPIRequest
	}

	if message != "" {
		return fmt.Errorf("%w: %s (status %d)", sentinel, message, resp.StatusCode)
	}
	return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode)
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit > 50 {
		limit = 50
	}
	return limit
}

// CurrentUser retrieves (and memoizes) the authenticated user's profile.
func (s *SpotifyService) CurrentUser(ctx context.Context) (*User, error) {
	if s.user == nil {
		var user SpotifyUser
		if err := s.doRequest(ctx, http.MethodGet, "/me", nil, &user); err != nil {
			return nil, err
		}
		s.user = &user
	}
	return &User{ID: s.user.ID, DisplayName: s.user.DisplayName}, nil
}

// NowPlaying returns the currently playing track, or nil when playback is
// stopped or the current item is not a track (podcast episode, ad).
func (s *SpotifyService) NowPlaying(ctx context.Context) (*Track, error) {
	var current SpotifyCurrentlyPlaying
	if err := s.doRequest(ctx, http.MethodGet, "/me/player/currently-playing", nil, &current); err != nil {
		return nil, err
	}

	if current.Item == nil || current.CurrentlyPlayingType != "track" {
		return nil, nil
	}

	track := trackFromWire(current.Item, false)
	playing := current.IsPlaying
	track.IsPlaying = &playing
	return track, nil
}

// activeDeviceID returns the active device's ID, falling back to the first
// available device. Empty when no device is connected.
func (s *SpotifyService) activeDeviceID(ctx context.Context) string {
	devices, err := s.Devices(ctx)
	if err != nil || len(devices) == 0 {
		return ""
	}
	for _, d := range devices {
		if d.IsActive {
			return d.ID
		}
	}
	return devices[0].ID
}

func withDevice(endpoint, deviceID string) string {
	if deviceID == "" {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "device_id=" + url.QueryEscape(deviceID)
}

// Play resumes playback or starts playing the given URI.
func (s *SpotifyService) Play(ctx context.Context, uri string) error {
	endpoint := withDevice("/me/player/play", s.activeDeviceID(ctx))

	var body any
	if uri != "" {
		if strings.HasPrefix(uri, "spotify:track:") {
			body = map[string]any{"uris": []string{uri}}
		} else {
			body = map[string]any{"context_uri": uri}
		}
	}

	return s.doRequest(ctx, http.MethodPut, endpoint, body, nil)
}

// Pause pauses playback on the active device.
func (s *SpotifyService) Pause(ctx context.Context) error {
	endpoint := withDevice("/me/player/pause", s.activeDeviceID(ctx))
	return s.doRequest(ctx, http.MethodPut, endpoint, nil, nil)
}

// Next skips to the next track.
func (s *SpotifyService) Next(ctx context.Context) error {
	return s.doRequest(ctx, http.MethodPost, "/me/player/next", nil, nil)
}

// Previous returns to the previous track.
func (s *SpotifyService) Previous(ctx context.Context) error {
	return s.doRequest(ctx, http.MethodPost, "/me/player/previous", nil, nil)
}

// SetVolume sets playback volume (0-100).
func (s *SpotifyService) SetVolume(ctx context.Context, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: volume must be 0-100, got %d", shared.ErrInvalidArgument, percent)
	}
	endpoint := fmt.Sprintf("/me/player/volume?volume_percent=%d", percent)
	return s.doRequest(ctx, http.MethodPut, endpoint, nil, nil)
}

// Devices lists available Spotify Connect devices.
func (s *SpotifyService) Devices(ctx context.Context) ([]Device, error) {
	var response struct {
		Devices []SpotifyDevice `json:"devices"`
	}
	if err := s.doRequest(ctx, http.MethodGet, "/me/player/devices", nil, &response); err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(response.Devices))
	for _, d := range response.Devices {
		devices = append(devices, Device{
			Name:          d.Name,
			ID:            d.ID,
			Type:          d.Type,
			IsActive:      d.IsActive,
			VolumePercent: d.VolumePercent,
		})
	}
	return devices, nil
}

// Queue returns the current playback queue.
func (s *SpotifyService) Queue(ctx context.Context) (*Queue, error) {
	var response SpotifyQueue
	if err := s.doRequest(ctx, http.MethodGet, "/me/player/queue", nil, &response); err != nil {
		return nil, err
	}

	queue := &Queue{Queue: []Track{}}
	if response.CurrentlyPlaying != nil {
		queue.CurrentlyPlaying = trackFromWire(response.CurrentlyPlaying, false)
	}
	for i := range response.Queue {
		queue.Queue = append(queue.Queue, *trackFromWire(&response.Queue[i], false))
	}
	return queue, nil
}

// QueueAdd appends a track URI to the playback queue.
func (s *SpotifyService) QueueAdd(ctx context.Context, uri string) error {
	endpoint := "/me/player/queue?uri=" + url.QueryEscape(uri)
	return s.doRequest(ctx, http.MethodPost, endpoint, nil, nil)
}

// Search performs a catalog search across the given item types.
func (s *SpotifyService) Search(ctx context.Context, query string, types []string, limit int) (*SearchResults, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", shared.ErrInvalidArgument)
	}

	for _, t := range types {
		switch t {
		case TypeTrack, TypeAlbum, TypeArtist, TypePlaylist:
		default:
			return nil, fmt.Errorf("%w: unknown search type %q", shared.ErrInvalidArgument, t)
		}
	}
	if len(types) == 0 {
		types = []string{TypeTrack}
	}

	limit = clampLimit(limit, 10)
	endpoint := fmt.Sprintf("/search?q=%s&type=%s&limit=%d",
		url.QueryEscape(query), url.QueryEscape(strings.Join(types, ",")), limit)

	var response SpotifySearchResponse
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	results := &SearchResults{}
	if response.Tracks != nil {
		for i := range response.Tracks.Items {
			results.Tracks = append(results.Tracks, *trackFromWire(&response.Tracks.Items[i], false))
		}
	}
	if response.Albums != nil {
		for i := range response.Albums.Items {
			results.Albums = append(results.Albums, *albumFromWire(&response.Albums.Items[i], false))
		}
	}
	if response.Artists != nil {
		for i := range response.Artists.Items {
			results.Artists = append(results.Artists, *artistFromWire(&response.Artists.Items[i], false))
		}
	}
	if response.Playlists != nil {
		username := s.username(ctx)
		for i := range response.Playlists.Items {
			results.Playlists = append(results.Playlists, *playlistFromWire(&response.Playlists.Items[i], username, false))
		}
	}
	return results, nil
}

// TrackInfo retrieves detailed track information.
func (s *SpotifyService) TrackInfo(ctx context.Context, id string) (*Track, error) {
	var track SpotifyTrack
	if err := s.doRequest(ctx, http.MethodGet, "/tracks/"+id, nil, &track); err != nil {
		return nil, err
	}
	return trackFromWire(&track, true), nil
}

// AlbumInfo retrieves detailed album information including its tracks.
func (s *SpotifyService) AlbumInfo(ctx context.Context, id string) (*Album, error) {
	var album SpotifyAlbum
	if err := s.doRequest(ctx, http.MethodGet, "/albums/"+id, nil, &album); err != nil {
		return nil, err
	}
	return albumFromWire(&album, true), nil
}

// ArtistInfo retrieves detailed artist information, aggregating the artist's
// top tracks and albums.
func (s *SpotifyService) ArtistInfo(ctx context.Context, id string) (*Artist, error) {
	var wire SpotifyArtist
	if err := s.doRequest(ctx, http.MethodGet, "/artists/"+id, nil, &wire); err != nil {
		return nil, err
	}
	artist := artistFromWire(&wire, true)

	var top struct {
		Tracks []SpotifyTrack `json:"tracks"`
	}
	if err := s.doRequest(ctx, http.MethodGet, "/artists/"+id+"/top-tracks", nil, &top); err != nil {
		return nil, err
	}
	for i := range top.Tracks {
		artist.TopTracks = append(artist.TopTracks, *trackFromWire(&top.Tracks[i], false))
	}

	var albums pagedAlbums
	if err := s.doRequest(ctx, http.MethodGet, "/artists/"+id+"/albums", nil, &albums); err != nil {
		return nil, err
	}
	for i := range albums.Items {
		artist.Albums = append(artist.Albums, *albumFromWire(&albums.Items[i], false))
	}

	return artist, nil
}

// PlaylistInfo retrieves detailed playlist information including its tracks.
func (s *SpotifyService) PlaylistInfo(ctx context.Context, id string) (*Playlist, error) {
	var playlist SpotifyPlaylist
	if err := s.doRequest(ctx, http.MethodGet, "/playlists/"+id, nil, &playlist); err != nil {
		return nil, err
	}
	return playlistFromWire(&playlist, s.username(ctx), true), nil
}

// Playlists lists the current user's playlists.
func (s *SpotifyService) Playlists(ctx context.Context, limit int) ([]Playlist, error) {
	limit = clampLimit(limit, 50)
	endpoint := fmt.Sprintf("/me/playlists?limit=%d", limit)

	var response pagedPlaylists
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	username := s.username(ctx)
	playlists := make([]Playlist, 0, len(response.Items))
	for i := range response.Items {
		playlists = append(playlists, *playlistFromWire(&response.Items[i], username, false))
	}
	return playlists, nil
}

// PlaylistTracks lists the tracks in a playlist.
func (s *SpotifyService) PlaylistTracks(ctx context.Context, id string) ([]Track, error) {
	endpoint := fmt.Sprintf("/playlists/%s/tracks?limit=100", id)

	var response struct {
		Items []SpotifyPlaylistTrack `json:"items"`
	}
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Track == nil {
			continue
		}
		tracks = append(tracks, *trackFromWire(item.Track, false))
	}
	return tracks, nil
}

// PlaylistAdd adds tracks to a playlist by track ID.
func (s *SpotifyService) PlaylistAdd(ctx context.Context, id string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return fmt.Errorf("%w: no track IDs provided", shared.ErrMissingArgument)
	}

	uris := make([]string, len(trackIDs))
	for i, trackID := range trackIDs {
		uris[i] = TrackURI(trackID)
	}

	body := map[string]any{"uris": uris}
	return s.doRequest(ctx, http.MethodPost, "/playlists/"+id+"/tracks", body, nil)
}

// PlaylistRemove removes all occurrences of the given tracks from a playlist.
func (s *SpotifyService) PlaylistRemove(ctx context.Context, id string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return fmt.Errorf("%w: no track IDs provided", shared.ErrMissingArgument)
	}

	items := make([]map[string]string, len(trackIDs))
	for i, trackID := range trackIDs {
		items[i] = map[string]string{"uri": TrackURI(trackID)}
	}

	body := map[string]any{"tracks": items}
	return s.doRequest(ctx, http.MethodDelete, "/playlists/"+id+"/tracks", body, nil)
}

// PlaylistCreate creates a new playlist for the current user.
func (s *SpotifyService) PlaylistCreate(ctx context.Context, name string, public bool, description string) (*Playlist, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name required", shared.ErrMissingArgument)
	}

	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"name":        name,
		"public":      public,
		"description": description,
	}

	var playlist SpotifyPlaylist
	endpoint := "/users/" + url.PathEscape(user.ID) + "/playlists"
	if err := s.doRequest(ctx, http.MethodPost, endpoint, body, &playlist); err != nil {
		return nil, err
	}
	return playlistFromWire(&playlist, user.DisplayName, true), nil
}

// SavedTracks lists the user's saved tracks.
func (s *SpotifyService) SavedTracks(ctx context.Context, limit int) ([]Track, error) {
	limit = clampLimit(limit, 20)
	endpoint := fmt.Sprintf("/me/tracks?limit=%d", limit)

	var response struct {
		Items []savedTrackItem `json:"items"`
	}
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Track == nil {
			continue
		}
		tracks = append(tracks, *trackFromWire(item.Track, false))
	}
	return tracks, nil
}

// SavedAlbums lists the user's saved albums.
func (s *SpotifyService) SavedAlbums(ctx context.Context, limit int) ([]Album, error) {
	limit = clampLimit(limit, 20)
	endpoint := fmt.Sprintf("/me/albums?limit=%d", limit)

	var response struct {
		Items []savedAlbumItem `json:"items"`
	}
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	albums := make([]Album, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Album == nil {
			continue
		}
		album := albumFromWire(item.Album, false)
		album.ReleaseDate = item.Album.ReleaseDate
		album.TotalTracks = item.Album.TotalTracks
		albums = append(albums, *album)
	}
	return albums, nil
}

func idsEndpoint(base string, ids []string) string {
	return base + "?ids=" + url.QueryEscape(strings.Join(ids, ","))
}

// SaveTracks adds tracks to the user's library.
func (s *SpotifyService) SaveTracks(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no track IDs provided", shared.ErrMissingArgument)
	}
	return s.doRequest(ctx, http.MethodPut, idsEndpoint("/me/tracks", ids), nil, nil)
}

// SaveAlbums adds albums to the user's library.
func (s *SpotifyService) SaveAlbums(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no album IDs provided", shared.ErrMissingArgument)
	}
	return s.doRequest(ctx, http.MethodPut, idsEndpoint("/me/albums", ids), nil, nil)
}

// UnsaveTracks removes tracks from the user's library.
func (s *SpotifyService) UnsaveTracks(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no track IDs provided", shared.ErrMissingArgument)
	}
	return s.doRequest(ctx, http.MethodDelete, idsEndpoint("/me/tracks", ids), nil, nil)
}

// UnsaveAlbums removes albums from the user's library.
func (s *SpotifyService) UnsaveAlbums(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no album IDs provided", shared.ErrMissingArgument)
	}
	return s.doRequest(ctx, http.MethodDelete, idsEndpoint("/me/albums", ids), nil, nil)
}

// RecentlyPlayed lists recently played tracks.
func (s *SpotifyService) RecentlyPlayed(ctx context.Context, limit int) ([]Track, error) {
	limit = clampLimit(limit, 20)
	endpoint := fmt.Sprintf("/me/player/recently-played?limit=%d", limit)

	var response struct {
		Items []playHistoryItem `json:"items"`
	}
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Track == nil {
			continue
		}
		tracks = append(tracks, *trackFromWire(item.Track, false))
	}
	return tracks, nil
}

// TopTracks lists the user's top tracks for a time range.
func (s *SpotifyService) TopTracks(ctx context.Context, timeRange string, limit int) ([]Track, error) {
	limit = clampLimit(limit, 20)
	endpoint := fmt.Sprintf("/me/top/tracks?time_range=%s&limit=%d", url.QueryEscape(timeRange), limit)

	var response pagedTracks
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(response.Items))
	for i := range response.Items {
		tracks = append(tracks, *trackFromWire(&response.Items[i], false))
	}
	return tracks, nil
}

// TopArtists lists the user's top artists for a time range.
func (s *SpotifyService) TopArtists(ctx context.Context, timeRange string, limit int) ([]Artist, error) {
	limit = clampLimit(limit, 20)
	endpoint := fmt.Sprintf("/me/top/artists?time_range=%s&limit=%d", url.QueryEscape(timeRange), limit)

	var response pagedArtists
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	artists := make([]Artist, 0, len(response.Items))
	for i := range response.Items {
		artists = append(artists, *artistFromWire(&response.Items[i], true))
	}
	return artists, nil
}

// username returns the current display name for owner comparisons, or empty
// when the profile lookup fails. Playlist listings degrade gracefully.
func (s *SpotifyService) username(ctx context.Context) string {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return ""
	}
	return user.DisplayName
}

// trackFromWire converts a wire track. Detailed conversion carries the
// album, track number, and artist IDs.
func trackFromWire(t *SpotifyTrack, detailed bool) *Track {
	track := &Track{
		Name:       t.Name,
		ID:         t.ID,
		DurationMS: t.DurationMS,
	}

	for _, a := range t.Artists {
		if detailed {
			track.Artists = append(track.Artists, Artist{Name: a.Name, ID: a.ID})
		} else {
			track.Artists = append(track.Artists, Artist{Name: a.Name})
		}
	}

	if detailed {
		track.TrackNumber = t.TrackNumber
		if t.Album.ID != "" || t.Album.Name != "" {
			track.Album = albumFromWire(&t.Album, false)
		}
	}

	return track
}

// artistFromWire converts a wire artist. Detailed conversion carries genres,
// followers, and popularity.
func artistFromWire(a *SpotifyArtist, detailed bool) *Artist {
	artist := &Artist{Name: a.Name, ID: a.ID}
	if detailed {
		artist.Genres = a.Genres
		total := a.Followers.Total
		artist.Followers = &total
		popularity := a.Popularity
		artist.Popularity = &popularity
	}
	return artist
}

// albumFromWire converts a wire album. Detailed conversion carries release
// metadata, genres, and the track listing.
func albumFromWire(a *SpotifyAlbum, detailed bool) *Album {
	album := &Album{Name: a.Name, ID: a.ID}

	for _, artist := range a.Artists {
		if detailed {
			album.Artists = append(album.Artists, Artist{Name: artist.Name, ID: artist.ID})
		} else {
			album.Artists = append(album.Artists, Artist{Name: artist.Name})
		}
	}

	if detailed {
		album.ReleaseDate = a.ReleaseDate
		album.TotalTracks = a.TotalTracks
		album.Genres = a.Genres
		for i := range a.Tracks.Items {
			album.Tracks = append(album.Tracks, *trackFromWire(&a.Tracks.Items[i], false))
		}
	}

	return album
}

// playlistFromWire converts a wire playlist. Detailed conversion carries the
// description and track listing.
func playlistFromWire(p *SpotifyPlaylist, username string, detailed bool) *Playlist {
	playlist := &Playlist{
		Name:        p.Name,
		ID:          p.ID,
		Owner:       p.Owner.DisplayName,
		TotalTracks: p.Tracks.Total,
	}

	if username != "" {
		isOwner := p.Owner.DisplayName == username
		playlist.UserIsOwner = &isOwner
	}

	if detailed {
		playlist.Description = p.Description
		for _, item := range p.Tracks.Items {
			if item.Track == nil {
				continue
			}
			playlist.Tracks = append(playlist.Tracks, *trackFromWire(item.Track, false))
		}
	}

	return playlist
}
