package ytmusic

import (
	simplejson "github.com/bitly/go-simplejson"

	"github.com/sozercan/kaset-sub000/models"
)

// ParseArtistDetail builds an artist page from a browse document. artistID is
// the id the page was requested with; ChannelID is set only when that id
// itself carries the real channel prefix, never guessed from the document.
func ParseArtistDetail(doc *simplejson.Json, artistID string) models.ArtistDetail {
	detail := models.ArtistDetail{
		Artist: models.Artist{ID: artistID, Name: "Unknown Artist"},
	}
	if models.IsChannelID(artistID) {
		detail.ChannelID = artistID
	}

	header := doc.GetPath("header", "musicImmersiveHeaderRenderer")
	if name, ok := nodeText(header.Get("title")); ok && name != "" {
		detail.Name = name
	}
	if description, ok := nodeText(header.Get("description")); ok {
		detail.Description = description
	}
	detail.Thumbnail = thumbnailURL(header)

	if button, ok := header.CheckGet("subscriptionButton"); ok {
		subscribe := button.Get("subscribeButtonRenderer")
		detail.Subscribed = subscribe.Get("subscribed").MustBool()
		detail.SubscriberCount, _ = nodeText(subscribe.Get("subscriberCountText"))
	}

	if playlistID := header.GetPath(
		"startRadioButton", "buttonRenderer",
		"navigationEndpoint", "watchPlaylistEndpoint", "playlistId",
	).MustString(); playlistID != "" {
		detail.RadioPlaylistID = playlistID
	}

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
		switch kind {
		case sectionShelf:
			detail.Songs = append(detail.Songs, shelfSongs(renderer)...)
			if detail.MoreSongs == nil {
				detail.MoreSongs = shelfMoreSongs(renderer)
			}
		case sectionCarousel:
			detail.Albums = append(detail.Albums, carouselAlbums(renderer)...)
		}
	}
	return detail
}

func shelfSongs(renderer *simplejson.Json) []models.Song {
	contents := renderer.Get("contents")
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var songs []models.Song
	for i := range arr {
		kind, item := itemKindOf(contents.GetIndex(i))
		if kind != itemResponsiveListItem {
			continue
		}
		if song := ParseSong(item); song != nil {
			songs = append(songs, *song)
		}
	}
	return songs
}

// shelfMoreSongs captures the browse handle a shelf exposes when it holds
// only a preview of a longer song list.
func shelfMoreSongs(renderer *simplejson.Json) *models.BrowseHandle {
	endpoint := renderer.GetPath("bottomEndpoint", "browseEndpoint")
	id := endpoint.Get("browseId").MustString()
	if id == "" {
		return nil
	}
	return &models.BrowseHandle{
		BrowseID: id,
		Params:   endpoint.Get("params").MustString(),
	}
}

// carouselAlbums collects the album entries of a carousel. Only ids carrying
// a recognized album prefix qualify; anything else in the carousel (mixes,
// playlists) is silently excluded.
func carouselAlbums(renderer *simplejson.Json) []models.Album {
	contents := renderer.Get("contents")
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var albums []models.Album
	for i := range arr {
		kind, item := itemKindOf(contents.GetIndex(i))
		if kind != itemTwoRow {
			continue
		}
		id := browseID(item)
		if !models.IsAlbumID(id) {
			continue
		}
		title, _ := nodeText(item.Get("title"))
		albums = append(albums, *twoRowAlbum(item, id, title, thumbnailURL(item)))
	}
	return albums
}
