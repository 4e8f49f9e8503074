// Package ytmusic turns the untyped response documents of the streaming
// service's internal web endpoint into the domain entities in models.
//
// Every function here is a pure transformation over a borrowed
// *simplejson.Json document. Missing fields yield defaults or absence, a
// malformed item is dropped from its collection, and nothing in this package
// blocks or keeps state, so all entry points are safe to call concurrently.
package ytmusic

import (
	"strconv"
	"strings"

	simplejson "github.com/bitly/go-simplejson"

	"github.com/sozercan/kaset-sub000/models"
)

// artistSeparators are the run texts that delimit artist credits inside a
// byline and are never credits themselves.
var artistSeparators = map[string]struct{}{
	" • ":   {},
	"•":     {},
	" & ":   {},
	" and ": {},
	", ":    {},
	",":     {},
}

var chartKeywords = []string{"top", "chart", "trending", "daily", "weekly", "hits"}

// runText concatenates the text fields of a node's runs in order. It returns
// ok=false when the runs key is absent so callers can apply their own default;
// runs that are present but empty concatenate to a present empty string.
func runText(node *simplejson.Json) (string, bool) {
	runs, ok := node.CheckGet("runs")
	if !ok {
		return "", false
	}
	arr, err := runs.Array()
	if err != nil {
		return "", false
	}
	var b strings.Builder
	for i := range arr {
		b.WriteString(runs.GetIndex(i).Get("text").MustString())
	}
	return b.String(), true
}

// nodeText reads a text node in either of its two encodings: a simpleText
// field or a runs list.
func nodeText(node *simplejson.Json) (string, bool) {
	if s, err := node.Get("simpleText").String(); err == nil {
		return s, true
	}
	return runText(node)
}

// artistsFromRuns walks byline runs and emits one Artist per non-separator
// run. A run carrying a browse endpoint keeps that id; an inline credit gets
// a synthetic deterministic id. Used identically for subtitle runs, flex
// column runs and long byline runs.
func artistsFromRuns(node *simplejson.Json) []models.Artist {
	runs, ok := node.CheckGet("runs")
	if !ok {
		return nil
	}
	arr, err := runs.Array()
	if err != nil {
		return nil
	}
	var artists []models.Artist
	for i := range arr {
		run := runs.GetIndex(i)
		text := run.Get("text").MustString()
		if _, sep := artistSeparators[text]; sep || strings.TrimSpace(text) == "" {
			continue
		}
		id := run.GetPath("navigationEndpoint", "browseEndpoint", "browseId").MustString()
		if id == "" {
			id = models.SyntheticArtistID(text)
		}
		artists = append(artists, models.Artist{ID: id, Name: text})
	}
	return artists
}

// thumbnailPaths are the known locations of a thumbnail candidate list,
// relative to the renderer the URL is wanted for.
var thumbnailPaths = [][]string{
	{"thumbnail", "musicThumbnailRenderer", "thumbnail", "thumbnails"},
	{"thumbnailRenderer", "musicThumbnailRenderer", "thumbnail", "thumbnails"},
	{"thumbnail", "croppedSquareThumbnailRenderer", "thumbnail", "thumbnails"},
	{"thumbnail", "thumbnails"},
	{"thumbnails"},
}

// thumbnailURL selects the widest candidate from the first thumbnail list
// found on node (ties keep the earlier entry) and normalizes scheme-relative
// URLs to https.
func thumbnailURL(node *simplejson.Json) string {
	for _, path := range thumbnailPaths {
		list := node.GetPath(path...)
		arr, err := list.Array()
		if err != nil {
			continue
		}
		best := ""
		bestWidth := -1
		for i := range arr {
			candidate := list.GetIndex(i)
			url := candidate.Get("url").MustString()
			if url == "" {
				continue
			}
			if width := candidate.Get("width").MustInt(); width > bestWidth {
				best = url
				bestWidth = width
			}
		}
		if best != "" {
			return normalizeURL(best)
		}
	}
	return ""
}

func normalizeURL(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

// parseDurationText converts a 2 or 3 segment colon duration ("4:30",
// "1:05:30") to total seconds. Any other shape yields ok=false.
func parseDurationText(text string) (float64, bool) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return float64(total), true
}

// durationSeconds reads a duration node holding either a numeric seconds
// value (possibly encoded as a string) or a display text in colon notation.
func durationSeconds(node *simplejson.Json) (float64, bool) {
	if secs, err := node.Float64(); err == nil && secs >= 0 {
		return secs, true
	}
	if s, err := node.String(); err == nil {
		if secs, err := strconv.ParseFloat(s, 64); err == nil && secs >= 0 {
			return secs, true
		}
		return parseDurationText(s)
	}
	if text, ok := nodeText(node); ok {
		return parseDurationText(text)
	}
	return 0, false
}

// videoID finds the playable video id on an item renderer, trying the known
// locations in priority order.
func videoID(renderer *simplejson.Json) string {
	if id := renderer.GetPath("playlistItemData", "videoId").MustString(); id != "" {
		return id
	}
	if id := renderer.GetPath("navigationEndpoint", "watchEndpoint", "videoId").MustString(); id != "" {
		return id
	}
	return renderer.GetPath(
		"overlay", "musicItemThumbnailOverlayRenderer", "content",
		"musicPlayButtonRenderer", "playNavigationEndpoint", "watchEndpoint", "videoId",
	).MustString()
}

// browseID reads the browse id off a node's navigation endpoint.
func browseID(node *simplejson.Json) string {
	return node.GetPath("navigationEndpoint", "browseEndpoint", "browseId").MustString()
}

// isChartTitle classifies a section title as a chart by keyword. Content is
// never inspected; a non-matching title is not a chart.
func isChartTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range chartKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// sectionKind identifies which renderer wraps a feed section. The wrapper key
// is inspected once here; all downstream logic switches on the kind.
type sectionKind int

const (
	sectionUnknown sectionKind = iota
	sectionShelf
	sectionCarousel
	sectionGrid
)

func sectionKindOf(section *simplejson.Json) (sectionKind, *simplejson.Json) {
	if renderer, ok := section.CheckGet("musicShelfRenderer"); ok {
		return sectionShelf, renderer
	}
	if renderer, ok := section.CheckGet("musicCarouselShelfRenderer"); ok {
		return sectionCarousel, renderer
	}
	if renderer, ok := section.CheckGet("gridRenderer"); ok {
		return sectionGrid, renderer
	}
	return sectionUnknown, nil
}

// itemKind identifies which renderer wraps a single item within a section.
type itemKind int

const (
	itemUnknown itemKind = iota
	itemTwoRow
	itemResponsiveListItem
	itemNavButton
	itemMultiRowListItem
	itemContinuationMarker
)

func itemKindOf(item *simplejson.Json) (itemKind, *simplejson.Json) {
	if renderer, ok := item.CheckGet("musicTwoRowItemRenderer"); ok {
		return itemTwoRow, renderer
	}
	if renderer, ok := item.CheckGet("musicResponsiveListItemRenderer"); ok {
		return itemResponsiveListItem, renderer
	}
	if renderer, ok := item.CheckGet("musicNavigationButtonRenderer"); ok {
		return itemNavButton, renderer
	}
	if renderer, ok := item.CheckGet("musicMultiRowListItemRenderer"); ok {
		return itemMultiRowListItem, renderer
	}
	if renderer, ok := item.CheckGet("continuationItemRenderer"); ok {
		return itemContinuationMarker, renderer
	}
	return itemUnknown, nil
}

// sectionListContents locates the section list of a browse document, either
// under the initial single column tab envelope or under the continuation
// envelope of a subsequent page.
func sectionListContents(doc *simplejson.Json) (*simplejson.Json, bool) {
	tab := doc.GetPath("contents", "singleColumnBrowseResultsRenderer", "tabs").
		GetIndex(0).
		GetPath("tabRenderer", "content", "sectionListRenderer")
	if contents, ok := tab.CheckGet("contents"); ok {
		return contents, true
	}
	cont := doc.GetPath("continuationContents", "sectionListContinuation")
	if contents, ok := cont.CheckGet("contents"); ok {
		return contents, true
	}
	return nil, false
}
