package ytmusic

import "testing"

func TestLyricsBrowseID(t *testing.T) {
	doc := mustDoc(t, `{"contents": {"singleColumnMusicWatchNextResultsRenderer": {"tabbedRenderer":
		{"watchNextTabbedResultsRenderer": {"tabs": [
			{"tabRenderer": {"title": "Up next", "endpoint": {"watchEndpoint": {"videoId": "vid123"}}}},
			{"tabRenderer": {"title": "Lyrics", "endpoint": {"browseEndpoint": {"browseId": "MPLYt_vid123"}}}},
			{"tabRenderer": {"title": "Related", "endpoint": {"browseEndpoint": {"browseId": "MPTRt_vid123"}}}}
		]}}}}}`)
	id, ok := LyricsBrowseID(doc)
	if !ok || id != "MPLYt_vid123" {
		t.Errorf("LyricsBrowseID = %q, %v", id, ok)
	}
}

func TestLyricsBrowseID_NoLyricsTab(t *testing.T) {
	doc := mustDoc(t, `{"contents": {"singleColumnMusicWatchNextResultsRenderer": {"tabbedRenderer":
		{"watchNextTabbedResultsRenderer": {"tabs": [
			{"tabRenderer": {"title": "Up next"}}
		]}}}}}`)
	if id, ok := LyricsBrowseID(doc); ok {
		t.Errorf("expected no lyrics tab, got %q", id)
	}
	if _, ok := LyricsBrowseID(mustDoc(t, `{}`)); ok {
		t.Error("empty document should yield no lyrics tab")
	}
}

func lyricsDoc(description, footer string) string {
	return `{"contents": {"sectionListRenderer": {"contents": [
		{"musicDescriptionShelfRenderer": {
			"description": ` + description + `,
			"footer": ` + footer + `
		}}
	]}}}`
}

func TestParseLyrics(t *testing.T) {
	doc := mustDoc(t, lyricsDoc(
		`{"runs": [{"text": "First verse\n"}, {"text": "Second line\n"}, {"text": "Third line"}]}`,
		`{"runs": [{"text": "Source: Musixmatch"}]}`,
	))
	result := ParseLyrics(doc)
	if !result.Available {
		t.Fatal("expected available lyrics")
	}
	if result.Text != "First verse\nSecond line\nThird line" {
		t.Errorf("Text = %q", result.Text)
	}
	if result.Source != "Source: Musixmatch" {
		t.Errorf("Source = %q", result.Source)
	}
}

func TestParseLyrics_EmptyTextIsUnavailable(t *testing.T) {
	doc := mustDoc(t, lyricsDoc(`{"runs": []}`, `{"runs": [{"text": "Source: Musixmatch"}]}`))
	result := ParseLyrics(doc)
	if result.Available {
		t.Error("empty text must be unavailable even with an attribution present")
	}
	if result.Source != "" {
		t.Errorf("unavailable result must not carry a source, got %q", result.Source)
	}
}

func TestParseLyrics_NoShelf(t *testing.T) {
	if result := ParseLyrics(mustDoc(t, `{}`)); result.Available {
		t.Error("document without a description shelf has no lyrics")
	}
	doc := mustDoc(t, `{"contents": {"sectionListRenderer": {"contents": [{"musicShelfRenderer": {}}]}}}`)
	if result := ParseLyrics(doc); result.Available {
		t.Error("unrelated shelf kinds must not produce lyrics")
	}
}
