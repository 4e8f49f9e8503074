package models

import "strings"

// LikeStatus is the rating state of a song as reported by the service.
type LikeStatus string

const (
	LikeStatusLike        LikeStatus = "LIKE"
	LikeStatusDislike     LikeStatus = "DISLIKE"
	LikeStatusIndifferent LikeStatus = "INDIFFERENT"
)

// ParseLikeStatus maps a raw status string to a LikeStatus. Anything
// unrecognized is treated as indifferent.
func ParseLikeStatus(raw string) LikeStatus {
	switch LikeStatus(raw) {
	case LikeStatusLike:
		return LikeStatusLike
	case LikeStatusDislike:
		return LikeStatusDislike
	default:
		return LikeStatusIndifferent
	}
}

// Artist is a single artist credit. ID is either a real channel id or a
// synthetic hash id for inline credits that carry no id in the source.
type Artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// IsNavigable reports whether the artist's id resolves to a real channel page.
func (a Artist) IsNavigable() bool {
	return IsNavigableID(a.ID)
}

// ArtistNames joins the display names of a credit list.
func ArtistNames(artists []Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

type Album struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Artists    []Artist `json:"artists,omitempty"`
	Thumbnail  string   `json:"thumbnail,omitempty"`
	Year       *int     `json:"year,omitempty"`
	TrackCount *int     `json:"track_count,omitempty"`
}

type Song struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Artists     []Artist   `json:"artists"`
	Album       *Album     `json:"album,omitempty"`
	Duration    *float64   `json:"duration,omitempty"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	LikeStatus  LikeStatus `json:"like_status"`
	InLibrary   bool       `json:"in_library"`
	AddToken    string     `json:"add_token,omitempty"`
	RemoveToken string     `json:"remove_token,omitempty"`
}

type Playlist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Author      string `json:"author,omitempty"`
	TrackCount  *int   `json:"track_count,omitempty"`
}

// IsAlbum reports whether the playlist id is actually an album-style id.
func (p Playlist) IsAlbum() bool {
	return IsAlbumID(p.ID)
}

// IsRadio reports whether the playlist id is a radio/mix id.
func (p Playlist) IsRadio() bool {
	return IsRadioPlaylistID(p.ID)
}

type PlaylistDetail struct {
	Playlist
	Tracks        []Song `json:"tracks"`
	TotalDuration string `json:"total_duration,omitempty"`
}

// HomeItemKind tags the branch held by a HomeItem.
type HomeItemKind string

const (
	HomeItemSong     HomeItemKind = "song"
	HomeItemAlbum    HomeItemKind = "album"
	HomeItemPlaylist HomeItemKind = "playlist"
	HomeItemArtist   HomeItemKind = "artist"
)

// HomeItem is a tagged union over the entity kinds a feed section can hold.
// Exactly one of the entity pointers is set, matching Kind.
type HomeItem struct {
	Kind     HomeItemKind `json:"kind"`
	Song     *Song        `json:"song,omitempty"`
	Album    *Album       `json:"album,omitempty"`
	Playlist *Playlist    `json:"playlist,omitempty"`
	Artist   *Artist      `json:"artist,omitempty"`
}

// ItemID returns the identifying id of whichever branch is set.
func (i HomeItem) ItemID() string {
	switch i.Kind {
	case HomeItemSong:
		return i.Song.ID
	case HomeItemAlbum:
		return i.Album.ID
	case HomeItemPlaylist:
		return i.Playlist.ID
	case HomeItemArtist:
		return i.Artist.ID
	}
	return ""
}

// ItemTitle returns the display title of whichever branch is set.
func (i HomeItem) ItemTitle() string {
	switch i.Kind {
	case HomeItemSong:
		return i.Song.Title
	case HomeItemAlbum:
		return i.Album.Title
	case HomeItemPlaylist:
		return i.Playlist.Title
	case HomeItemArtist:
		return i.Artist.Name
	}
	return ""
}

// Subtitle returns the secondary display line for the item.
func (i HomeItem) Subtitle() string {
	switch i.Kind {
	case HomeItemSong:
		return ArtistNames(i.Song.Artists)
	case HomeItemAlbum:
		return ArtistNames(i.Album.Artists)
	case HomeItemPlaylist:
		if i.Playlist.Author != "" {
			return i.Playlist.Author
		}
		return i.Playlist.Description
	}
	return ""
}

// ThumbnailURL returns the item's artwork URL, if any.
func (i HomeItem) ThumbnailURL() string {
	switch i.Kind {
	case HomeItemSong:
		return i.Song.Thumbnail
	case HomeItemAlbum:
		return i.Album.Thumbnail
	case HomeItemPlaylist:
		return i.Playlist.Thumbnail
	case HomeItemArtist:
		return i.Artist.Thumbnail
	}
	return ""
}

// VideoID returns the playable video id for song items.
func (i HomeItem) VideoID() (string, bool) {
	if i.Kind == HomeItemSong {
		return i.Song.ID, true
	}
	return "", false
}

// BrowseID returns the id usable as a browse target, for items that have one.
func (i HomeItem) BrowseID() (string, bool) {
	switch i.Kind {
	case HomeItemAlbum:
		return i.Album.ID, true
	case HomeItemPlaylist:
		return i.Playlist.ID, true
	case HomeItemArtist:
		if i.Artist.IsNavigable() {
			return i.Artist.ID, true
		}
	}
	return "", false
}

type HomeSection struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Items   []HomeItem `json:"items"`
	IsChart bool       `json:"is_chart"`
}

// BrowseHandle is an opaque browse target (id plus optional params) captured
// from a document for a follow-up fetch.
type BrowseHandle struct {
	BrowseID string `json:"browse_id"`
	Params   string `json:"params,omitempty"`
}

type ArtistDetail struct {
	Artist
	Description     string        `json:"description,omitempty"`
	Songs           []Song        `json:"songs"`
	Albums          []Album       `json:"albums"`
	ChannelID       string        `json:"channel_id,omitempty"`
	Subscribed      bool          `json:"subscribed"`
	SubscriberCount string        `json:"subscriber_count,omitempty"`
	RadioPlaylistID string        `json:"radio_playlist_id,omitempty"`
	MoreSongs       *BrowseHandle `json:"more_songs,omitempty"`
}

// HasMoreSongs reports whether a handle for the full song list was found.
func (d ArtistDetail) HasMoreSongs() bool {
	return d.MoreSongs != nil
}

// Continuation is an opaque pagination cursor. An empty token means the
// listing has no further pages.
type Continuation struct {
	Token string `json:"token,omitempty"`
}

// HasMore is true exactly when a continuation token was found.
func (c Continuation) HasMore() bool {
	return c.Token != ""
}

// LyricsResult is either unavailable or a lyrics text with an optional
// source attribution.
type LyricsResult struct {
	Available bool   `json:"available"`
	Text      string `json:"text,omitempty"`
	Source    string `json:"source,omitempty"`
}

type PodcastShow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type PodcastEpisode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Published   string `json:"published,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// PodcastSectionItemKind tags the branch held by a PodcastSectionItem.
type PodcastSectionItemKind string

const (
	PodcastItemShow    PodcastSectionItemKind = "show"
	PodcastItemEpisode PodcastSectionItemKind = "episode"
)

type PodcastSectionItem struct {
	Kind    PodcastSectionItemKind `json:"kind"`
	Show    *PodcastShow           `json:"show,omitempty"`
	Episode *PodcastEpisode        `json:"episode,omitempty"`
}

// ItemID returns the identifying id of whichever branch is set.
func (i PodcastSectionItem) ItemID() string {
	if i.Kind == PodcastItemShow {
		return i.Show.ID
	}
	return i.Episode.ID
}

// ItemTitle returns the display title of whichever branch is set.
func (i PodcastSectionItem) ItemTitle() string {
	if i.Kind == PodcastItemShow {
		return i.Show.Title
	}
	return i.Episode.Title
}

type PodcastSection struct {
	Title string               `json:"title"`
	Items []PodcastSectionItem `json:"items"`
}

type PodcastShowDetail struct {
	PodcastShow
	Subscribed   bool             `json:"subscribed"`
	Episodes     []PodcastEpisode `json:"episodes"`
	Continuation Continuation     `json:"continuation"`
}

// HasMore reports whether more episodes can be fetched.
func (d PodcastShowDetail) HasMore() bool {
	return d.Continuation.HasMore()
}

type PodcastEpisodesContinuation struct {
	Episodes     []PodcastEpisode `json:"episodes"`
	Continuation Continuation     `json:"continuation"`
}

// HasMore reports whether more episodes can be fetched.
func (c PodcastEpisodesContinuation) HasMore() bool {
	return c.Continuation.HasMore()
}
