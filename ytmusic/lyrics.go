package ytmusic

import (
	simplejson "github.com/bitly/go-simplejson"

	"github.com/sozercan/kaset-sub000/models"
)

// LyricsBrowseID scans the tab list of a now-playing document for the lyrics
// tab and returns its browse id. ok is false when no tab qualifies.
func LyricsBrowseID(doc *simplejson.Json) (string, bool) {
	tabs := doc.GetPath(
		"contents", "singleColumnMusicWatchNextResultsRenderer",
		"tabbedRenderer", "watchNextTabbedResultsRenderer", "tabs",
	)
	arr, err := tabs.Array()
	if err != nil {
		return "", false
	}
	for i := range arr {
		id := tabs.GetIndex(i).
			GetPath("tabRenderer", "endpoint", "browseEndpoint", "browseId").
			MustString()
		if models.IsLyricsBrowseID(id) {
			return id, true
		}
	}
	return "", false
}

// ParseLyrics extracts lyrics text and attribution from a lyrics browse
// document. Empty text is normalized to unavailable even when an attribution
// is present.
func ParseLyrics(doc *simplejson.Json) models.LyricsResult {
	contents := doc.GetPath("contents", "sectionListRenderer", "contents")
	arr, err := contents.Array()
	if err != nil {
		return models.LyricsResult{}
	}
	for i := range arr {
		shelf, ok := contents.GetIndex(i).CheckGet("musicDescriptionShelfRenderer")
		if !ok {
			continue
		}
		text, _ := runText(shelf.Get("description"))
		if text == "" {
			return models.LyricsResult{}
		}
		source, _ := runText(shelf.Get("footer"))
		return models.LyricsResult{Available: true, Text: text, Source: source}
	}
	return models.LyricsResult{}
}
