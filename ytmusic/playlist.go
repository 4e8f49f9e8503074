package ytmusic

import (
	"strconv"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
	log "github.com/sirupsen/logrus"

	"github.com/sozercan/kaset-sub000/models"
)

// ParseLibraryPlaylists builds the library playlist listing from a grid
// document. Items without a browse id are dropped; siblings are unaffected.
func ParseLibraryPlaylists(doc *simplejson.Json) []models.Playlist {
	contents, ok := sectionListContents(doc)
	if !ok {
		return nil
	}
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var playlists []models.Playlist
	for i := range arr {
		kind, renderer := sectionKindOf(contents.GetIndex(i))
		if kind != sectionGrid {
			continue
		}
		items := renderer.Get("items")
		itemArr, err := items.Array()
		if err != nil {
			continue
		}
		for j := range itemArr {
			itemKind, item := itemKindOf(items.GetIndex(j))
			if itemKind != itemTwoRow {
				continue
			}
			if playlist := gridPlaylist(item); playlist != nil {
				playlists = append(playlists, *playlist)
			}
		}
	}
	return playlists
}

func gridPlaylist(renderer *simplejson.Json) *models.Playlist {
	id := browseID(renderer)
	if id == "" {
		log.Trace("dropping grid item without a browse id")
		return nil
	}
	title, _ := nodeText(renderer.Get("title"))
	playlist := &models.Playlist{
		ID:        id,
		Title:     title,
		Thumbnail: thumbnailURL(renderer),
	}
	playlist.Author = bylineAuthor(renderer.Get("subtitle"))
	if count := trackCountFromRuns(renderer.Get("subtitle")); count != nil {
		playlist.TrackCount = count
	}
	return playlist
}

// ParsePlaylistDetail builds a playlist page: header metadata plus the track
// shelf. playlistID is the id the page was requested with.
func ParsePlaylistDetail(doc *simplejson.Json, playlistID string) models.PlaylistDetail {
	detail := models.PlaylistDetail{
		Playlist: models.Playlist{ID: playlistID},
	}

	header := doc.GetPath("header", "musicDetailHeaderRenderer")
	if title, ok := nodeText(header.Get("title")); ok {
		detail.Title = title
	}
	if description, ok := nodeText(header.Get("description")); ok {
		detail.Description = description
	}
	detail.Thumbnail = thumbnailURL(header)
	detail.Author = bylineAuthor(header.Get("subtitle"))

	second := header.Get("secondSubtitle")
	if count := trackCountFromRuns(second); count != nil {
		detail.TrackCount = count
	}
	detail.TotalDuration = totalDurationFromRuns(second)

	contents, ok := sectionListContents(doc)
	if !ok {
		return detail
	}
	arr, err := contents.Array()
	if err != nil {
		return detail
	}
	for i := range arr {
		kind, renderer := sectionKindOf(contents.GetIndex(i))
		if kind != sectionShelf {
			continue
		}
		detail.Tracks = append(detail.Tracks, shelfSongs(renderer)...)
	}
	return detail
}

// ParsePlaylistContinuation parses one further page of playlist tracks. Two
// envelope shapes exist: the older shelf continuation, and the newer action
// based envelope whose item list may end with a marker item carrying the next
// token. A missing marker means the listing is complete, never an error.
func ParsePlaylistContinuation(doc *simplejson.Json) ([]models.Song, models.Continuation) {
	if shelf, ok := doc.GetPath("continuationContents", "musicShelfContinuation").CheckGet("contents"); ok {
		songs := continuationSongs(shelf)
		token := doc.GetPath("continuationContents", "musicShelfContinuation", "continuations").
			GetIndex(0).
			GetPath("nextContinuationData", "continuation").
			MustString()
		return songs, models.Continuation{Token: token}
	}

	items := doc.Get("onResponseReceivedActions").
		GetIndex(0).
		GetPath("appendContinuationItemsAction", "continuationItems")
	arr, err := items.Array()
	if err != nil {
		return nil, models.Continuation{}
	}
	var songs []models.Song
	var token string
	for i := range arr {
		kind, renderer := itemKindOf(items.GetIndex(i))
		switch kind {
		case itemContinuationMarker:
			token = renderer.GetPath("continuationEndpoint", "continuationCommand", "token").MustString()
		case itemResponsiveListItem:
			if song := ParseSong(renderer); song != nil {
				songs = append(songs, *song)
			}
		}
	}
	return songs, models.Continuation{Token: token}
}

func continuationSongs(contents *simplejson.Json) []models.Song {
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var songs []models.Song
	for i := range arr {
		kind, renderer := itemKindOf(contents.GetIndex(i))
		if kind != itemResponsiveListItem {
			continue
		}
		if song := ParseSong(renderer); song != nil {
			songs = append(songs, *song)
		}
	}
	return songs
}

// bylineAuthor picks the author credit out of subtitle runs, skipping
// separators and the entity type label the service prepends ("Playlist",
// "Album").
func bylineAuthor(node *simplejson.Json) string {
	runs, ok := node.CheckGet("runs")
	if !ok {
		return ""
	}
	arr, err := runs.Array()
	if err != nil {
		return ""
	}
	for i := range arr {
		text := runs.GetIndex(i).Get("text").MustString()
		if _, sep := artistSeparators[text]; sep || strings.TrimSpace(text) == "" {
			continue
		}
		switch text {
		case "Playlist", "Album", "Single", "EP", "Mix":
			continue
		}
		return text
	}
	return ""
}

// trackCountFromRuns finds a "N songs" / "N tracks" run and returns N.
func trackCountFromRuns(node *simplejson.Json) *int {
	runs, ok := node.CheckGet("runs")
	if !ok {
		return nil
	}
	arr, err := runs.Array()
	if err != nil {
		return nil
	}
	for i := range arr {
		text := runs.GetIndex(i).Get("text").MustString()
		fields := strings.Fields(text)
		if len(fields) != 2 {
			continue
		}
		switch fields[1] {
		case "song", "songs", "track", "tracks":
		default:
			continue
		}
		if count, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", "")); err == nil {
			return &count
		}
	}
	return nil
}

// totalDurationFromRuns returns the display duration run of a second
// subtitle (the run that is neither a separator nor the track count).
func totalDurationFromRuns(node *simplejson.Json) string {
	runs, ok := node.CheckGet("runs")
	if !ok {
		return ""
	}
	arr, err := runs.Array()
	if err != nil {
		return ""
	}
	last := ""
	for i := range arr {
		text := runs.GetIndex(i).Get("text").MustString()
		if _, sep := artistSeparators[text]; sep || strings.TrimSpace(text) == "" {
			continue
		}
		last = text
	}
	if count := trackCountFromRuns(node); count != nil {
		// The count run is not a duration; only report something beyond it.
		fields := strings.Fields(last)
		if len(fields) == 2 {
			switch fields[1] {
			case "song", "songs", "track", "tracks":
				return ""
			}
		}
	}
	return last
}
