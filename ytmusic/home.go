package ytmusic

import (
	"strconv"

	simplejson "github.com/bitly/go-simplejson"
	log "github.com/sirupsen/logrus"

	"github.com/sozercan/kaset-sub000/models"
)

// ParseHomeSections walks the tab → section list structure of a feed
// document and returns the sections in display order. A section whose item
// list parses to zero items is dropped entirely, never represented empty.
func ParseHomeSections(doc *simplejson.Json) []models.HomeSection {
	contents, ok := sectionListContents(doc)
	if !ok {
		log.WithField("module", "ytmusic").Debug("feed document has no section list")
		return nil
	}
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var sections []models.HomeSection
	for i := range arr {
		if section := parseHomeSection(contents.GetIndex(i)); section != nil {
			sections = append(sections, *section)
		}
	}
	return sections
}

func parseHomeSection(section *simplejson.Json) *models.HomeSection {
	kind, renderer := sectionKindOf(section)

	var id, title string
	var items []models.HomeItem
	switch kind {
	case sectionShelf:
		title, _ = nodeText(renderer.Get("title"))
		items = parseHomeItems(renderer.Get("contents"))
	case sectionCarousel:
		header := renderer.GetPath("header", "musicCarouselShelfBasicHeaderRenderer")
		title, _ = nodeText(header.Get("title"))
		id = browseID(header.Get("title").Get("runs").GetIndex(0))
		items = parseHomeItems(renderer.Get("contents"))
	case sectionGrid:
		title, _ = nodeText(renderer.GetPath("header", "gridHeaderRenderer", "title"))
		items = parseHomeItems(renderer.Get("items"))
	default:
		return nil
	}

	if len(items) == 0 {
		return nil
	}
	if id == "" {
		id = title
	}
	return &models.HomeSection{
		ID:      id,
		Title:   title,
		Items:   items,
		IsChart: isChartTitle(title),
	}
}

func parseHomeItems(contents *simplejson.Json) []models.HomeItem {
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var items []models.HomeItem
	for i := range arr {
		if item, ok := parseHomeItem(contents.GetIndex(i)); ok {
			items = append(items, item)
		}
	}
	return items
}

func parseHomeItem(entry *simplejson.Json) (models.HomeItem, bool) {
	kind, renderer := itemKindOf(entry)
	switch kind {
	case itemTwoRow:
		return parseTwoRowItem(renderer)
	case itemResponsiveListItem:
		if song := ParseSong(renderer); song != nil {
			return models.HomeItem{Kind: models.HomeItemSong, Song: song}, true
		}
	case itemNavButton:
		if playlist := navButtonPlaylist(renderer); playlist != nil {
			return models.HomeItem{Kind: models.HomeItemPlaylist, Playlist: playlist}, true
		}
	}
	return models.HomeItem{}, false
}

// parseTwoRowItem dispatches a two row renderer on its embedded page type
// hint: albums and playlists share the renderer and differ only in that hint
// (with the id prefix as fallback when the hint is missing).
func parseTwoRowItem(renderer *simplejson.Json) (models.HomeItem, bool) {
	endpoint := renderer.GetPath("navigationEndpoint", "browseEndpoint")
	id := endpoint.Get("browseId").MustString()
	title, _ := nodeText(renderer.Get("title"))
	thumbnail := thumbnailURL(renderer)

	if id == "" {
		// No browse target: a two row item can still be a playable song.
		if song := twoRowSong(renderer, title, thumbnail); song != nil {
			return models.HomeItem{Kind: models.HomeItemSong, Song: song}, true
		}
		return models.HomeItem{}, false
	}

	pageType := endpoint.GetPath(
		"browseEndpointContextSupportedConfigs",
		"browseEndpointContextMusicConfig", "pageType",
	).MustString()

	switch pageType {
	case "MUSIC_PAGE_TYPE_ARTIST", "MUSIC_PAGE_TYPE_USER_CHANNEL":
		name := title
		if name == "" {
			name = "Unknown Artist"
		}
		return models.HomeItem{Kind: models.HomeItemArtist, Artist: &models.Artist{
			ID:        id,
			Name:      name,
			Thumbnail: thumbnail,
		}}, true
	case "MUSIC_PAGE_TYPE_ALBUM":
		return models.HomeItem{Kind: models.HomeItemAlbum, Album: twoRowAlbum(renderer, id, title, thumbnail)}, true
	case "MUSIC_PAGE_TYPE_PLAYLIST":
		return models.HomeItem{Kind: models.HomeItemPlaylist, Playlist: twoRowPlaylist(renderer, id, title, thumbnail)}, true
	}

	if models.IsAlbumID(id) {
		return models.HomeItem{Kind: models.HomeItemAlbum, Album: twoRowAlbum(renderer, id, title, thumbnail)}, true
	}
	return models.HomeItem{Kind: models.HomeItemPlaylist, Playlist: twoRowPlaylist(renderer, id, title, thumbnail)}, true
}

func twoRowAlbum(renderer *simplejson.Json, id, title, thumbnail string) *models.Album {
	if title == "" {
		title = "Unknown Album"
	}
	album := &models.Album{
		ID:        id,
		Title:     title,
		Artists:   artistsFromRuns(renderer.Get("subtitle")),
		Thumbnail: thumbnail,
	}
	if year := yearFromRuns(renderer.Get("subtitle")); year != nil {
		album.Year = year
	}
	return album
}

func twoRowPlaylist(renderer *simplejson.Json, id, title, thumbnail string) *models.Playlist {
	subtitle, _ := runText(renderer.Get("subtitle"))
	return &models.Playlist{
		ID:          id,
		Title:       title,
		Description: subtitle,
		Thumbnail:   thumbnail,
	}
}

func twoRowSong(renderer *simplejson.Json, title, thumbnail string) *models.Song {
	id := renderer.GetPath("navigationEndpoint", "watchEndpoint", "videoId").MustString()
	if id == "" {
		return nil
	}
	if title == "" {
		title = unknownTitle
	}
	return &models.Song{
		ID:         id,
		Title:      title,
		Artists:    artistsFromRuns(renderer.Get("subtitle")),
		Thumbnail:  thumbnail,
		LikeStatus: models.LikeStatusIndifferent,
	}
}

// yearFromRuns finds a four digit year among subtitle runs.
func yearFromRuns(node *simplejson.Json) *int {
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
		if len(text) != 4 {
			continue
		}
		if year, err := strconv.Atoi(text); err == nil && year >= 1000 {
			return &year
		}
	}
	return nil
}

// navButtonPlaylist turns a mood/genre category button into a playlist-like
// item. Disambiguating params are appended to the browse id so two categories
// sharing an id do not collide.
func navButtonPlaylist(renderer *simplejson.Json) *models.Playlist {
	endpoint := renderer.GetPath("clickCommand", "browseEndpoint")
	id := endpoint.Get("browseId").MustString()
	if id == "" {
		return nil
	}
	if params := endpoint.Get("params").MustString(); params != "" {
		id = id + "_" + params
	}
	title, _ := nodeText(renderer.Get("buttonText"))
	return &models.Playlist{ID: id, Title: title}
}

// HomeContinuation extracts the next-page token of a feed document. Both the
// initial load envelope and the subsequent page envelope are recognized; a
// missing token yields an empty continuation, not an error.
func HomeContinuation(doc *simplejson.Json) models.Continuation {
	token := doc.GetPath("contents", "singleColumnBrowseResultsRenderer", "tabs").
		GetIndex(0).
		GetPath("tabRenderer", "content", "sectionListRenderer", "continuations").
		GetIndex(0).
		GetPath("nextContinuationData", "continuation").
		MustString()
	if token == "" {
		token = doc.GetPath("continuationContents", "sectionListContinuation", "continuations").
			GetIndex(0).
			GetPath("nextContinuationData", "continuation").
			MustString()
	}
	return models.Continuation{Token: token}
}
