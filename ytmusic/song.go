package ytmusic

import (
	"errors"
	"fmt"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
	log "github.com/sirupsen/logrus"

	"github.com/sozercan/kaset-sub000/models"
)

const unknownTitle = "Unknown Title"

// ErrPanelMismatch is returned when a now-playing document does not contain a
// panel renderer for the requested video in any recognized shape. This is the
// one failure this package surfaces as an error: the caller asked for a
// specific video and the document does not describe it.
var ErrPanelMismatch = errors.New("now playing panel does not match the requested video")

// ParseSong builds a Song from a responsive list item renderer. It returns
// nil when no video id is reachable anywhere on the renderer; a Song with an
// empty id never escapes.
func ParseSong(renderer *simplejson.Json) *models.Song {
	id := videoID(renderer)
	if id == "" {
		log.Trace("dropping list item without a video id")
		return nil
	}

	song := &models.Song{
		ID:         id,
		Title:      unknownTitle,
		LikeStatus: models.LikeStatusIndifferent,
	}
	if title, ok := nodeText(flexColumnText(renderer, 0)); ok && title != "" {
		song.Title = title
	}
	song.Artists = artistsFromRuns(flexColumnText(renderer, 1))
	song.Album = albumFromRuns(flexColumnText(renderer, 2))
	song.Thumbnail = thumbnailURL(renderer)
	if secs, ok := songDuration(renderer); ok {
		song.Duration = &secs
	}
	applyMenu(renderer, song)
	return song
}

// flexColumnText returns the text node of the i-th flex column.
func flexColumnText(renderer *simplejson.Json, i int) *simplejson.Json {
	return renderer.Get("flexColumns").
		GetIndex(i).
		GetPath("musicResponsiveListItemFlexColumnRenderer", "text")
}

// songDuration reads the duration from the fixed column, falling back to a
// lengthText node for renderers that carry one.
func songDuration(renderer *simplejson.Json) (float64, bool) {
	fixed := renderer.Get("fixedColumns").
		GetIndex(0).
		GetPath("musicResponsiveListItemFixedColumnRenderer", "text")
	if secs, ok := durationSeconds(fixed); ok {
		return secs, true
	}
	if text, ok := nodeText(renderer.Get("lengthText")); ok {
		return parseDurationText(text)
	}
	return 0, false
}

// albumFromRuns picks the album credit out of byline runs: the first run that
// navigates to an album-prefixed browse id wins. When no run carries an album
// id, the first plain run (no endpoint, not a separator) still names the
// album, just without an id. Returns nil only when neither an id nor a name
// can be found.
func albumFromRuns(node *simplejson.Json) *models.Album {
	runs, ok := node.CheckGet("runs")
	if !ok {
		return nil
	}
	arr, err := runs.Array()
	if err != nil {
		return nil
	}
	name := ""
	for i := range arr {
		run := runs.GetIndex(i)
		title := run.Get("text").MustString()
		id := browseID(run)
		if models.IsAlbumID(id) {
			if title == "" {
				title = "Unknown Album"
			}
			return &models.Album{ID: id, Title: title}
		}
		if name != "" || id != "" {
			continue
		}
		if _, sep := artistSeparators[title]; sep || strings.TrimSpace(title) == "" {
			continue
		}
		name = title
	}
	if name == "" {
		return nil
	}
	return &models.Album{Title: name}
}

// applyMenu folds the interactive state found under a renderer's action menu
// into song: like status from the like button, library membership and
// feedback tokens from the library toggle item. A missing menu leaves the
// defaults (indifferent, not in library, no tokens).
func applyMenu(renderer *simplejson.Json, song *models.Song) {
	menu := renderer.GetPath("menu", "menuRenderer")

	// Panel renderers hang the like button off the renderer itself.
	if status, err := renderer.GetPath("likeButton", "likeButtonRenderer", "likeStatus").String(); err == nil {
		song.LikeStatus = models.ParseLikeStatus(status)
	}

	buttons := menu.Get("topLevelButtons")
	if arr, err := buttons.Array(); err == nil {
		for i := range arr {
			like := buttons.GetIndex(i).Get("likeButtonRenderer")
			if status, err := like.Get("likeStatus").String(); err == nil {
				song.LikeStatus = models.ParseLikeStatus(status)
				break
			}
		}
	}

	items := menu.Get("items")
	arr, err := items.Array()
	if err != nil {
		return
	}
	for i := range arr {
		toggle, ok := items.GetIndex(i).CheckGet("toggleMenuServiceItemRenderer")
		if !ok {
			continue
		}
		defaultToken := feedbackToken(toggle.Get("defaultServiceEndpoint"))
		toggledToken := feedbackToken(toggle.Get("toggledServiceEndpoint"))
		switch toggle.GetPath("defaultIcon", "iconType").MustString() {
		case "LIBRARY_ADD":
			song.InLibrary = false
			song.AddToken = defaultToken
			song.RemoveToken = toggledToken
		case "LIBRARY_REMOVE", "LIBRARY_SAVED":
			song.InLibrary = true
			song.RemoveToken = defaultToken
			song.AddToken = toggledToken
		}
	}
}

func feedbackToken(endpoint *simplejson.Json) string {
	return endpoint.GetPath("feedbackEndpoint", "feedbackToken").MustString()
}

// ParseNowPlayingSong extracts the panel renderer for videoID out of a
// now-playing ("next") document and builds a Song from it. The renderer may
// sit in the panel directly or inside a pass-through wrapper. When neither
// shape matches the requested id the document does not describe what the
// caller asked for, and ErrPanelMismatch is returned.
func ParseNowPlayingSong(doc *simplejson.Json, videoID string) (*models.Song, error) {
	contents := doc.GetPath(
		"contents", "singleColumnMusicWatchNextResultsRenderer",
		"tabbedRenderer", "watchNextTabbedResultsRenderer", "tabs",
	).GetIndex(0).GetPath(
		"tabRenderer", "content", "musicQueueRenderer",
		"content", "playlistPanelRenderer", "contents",
	)
	arr, err := contents.Array()
	if err != nil {
		return nil, fmt.Errorf("video %s: no playlist panel: %w", videoID, ErrPanelMismatch)
	}
	for i := range arr {
		entry := contents.GetIndex(i)
		renderer, ok := entry.CheckGet("playlistPanelVideoRenderer")
		if !ok {
			renderer, ok = entry.CheckGet("playlistPanelVideoWrapperRenderer")
			if !ok {
				continue
			}
			renderer = renderer.GetPath("primaryRenderer", "playlistPanelVideoRenderer")
		}
		if renderer.Get("videoId").MustString() != videoID {
			continue
		}
		return songFromPanel(renderer, videoID), nil
	}
	log.WithFields(log.Fields{"module": "ytmusic", "video_id": videoID}).
		Debug("now playing panel does not contain the requested video")
	return nil, fmt.Errorf("video %s: %w", videoID, ErrPanelMismatch)
}

// songFromPanel builds a Song from a playlist panel video renderer, which
// lays its fields out differently from a responsive list item.
func songFromPanel(renderer *simplejson.Json, id string) *models.Song {
	song := &models.Song{
		ID:         id,
		Title:      unknownTitle,
		LikeStatus: models.LikeStatusIndifferent,
	}
	if title, ok := nodeText(renderer.Get("title")); ok && title != "" {
		song.Title = title
	}
	song.Artists = artistsFromRuns(renderer.Get("longBylineText"))
	song.Album = albumFromRuns(renderer.Get("longBylineText"))
	song.Thumbnail = thumbnailURL(renderer)
	if text, ok := nodeText(renderer.Get("lengthText")); ok {
		if secs, ok := parseDurationText(text); ok {
			song.Duration = &secs
		}
	}
	applyMenu(renderer, song)
	return song
}
