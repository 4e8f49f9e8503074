package ytmusic

import (
	"testing"

	"github.com/sozercan/kaset-sub000/models"
)

// feedDoc wraps section fixtures in the single column tab envelope.
func feedDoc(sections string) string {
	return `{"contents": {"singleColumnBrowseResultsRenderer": {"tabs": [
		{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [` + sections + `]}}}}
	]}}}`
}

const carouselSectionFixture = `{"musicCarouselShelfRenderer": {
	"header": {"musicCarouselShelfBasicHeaderRenderer": {"title": {"runs": [
		{"text": "Top albums this week", "navigationEndpoint": {"browseEndpoint": {"browseId": "FEmusic_charts"}}}
	]}}},
	"contents": [
		{"musicTwoRowItemRenderer": {
			"title": {"runs": [{"text": "Rumours"}]},
			"subtitle": {"runs": [{"text": "Fleetwood Mac"}, {"text": " • "}, {"text": "1977"}]},
			"navigationEndpoint": {"browseEndpoint": {
				"browseId": "MPREb_rum",
				"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ALBUM"}}
			}},
			"thumbnailRenderer": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [{"url": "//img/rumours.jpg", "width": 226}]}}}
		}},
		{"musicTwoRowItemRenderer": {
			"title": {"runs": [{"text": "Soft rock classics"}]},
			"subtitle": {"runs": [{"text": "Playlist"}]},
			"navigationEndpoint": {"browseEndpoint": {
				"browseId": "PLsoft",
				"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_PLAYLIST"}}
			}}
		}},
		{"musicTwoRowItemRenderer": {
			"title": {"runs": [{"text": "Fleetwood Mac"}]},
			"navigationEndpoint": {"browseEndpoint": {
				"browseId": "UCfm123",
				"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ARTIST"}}
			}}
		}}
	]
}}`

func TestParseHomeSections_Carousel(t *testing.T) {
	sections := ParseHomeSections(mustDoc(t, feedDoc(carouselSectionFixture)))
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	section := sections[0]
	if section.Title != "Top albums this week" {
		t.Errorf("Title = %q", section.Title)
	}
	if section.ID != "FEmusic_charts" {
		t.Errorf("ID = %q, want header browse id", section.ID)
	}
	if !section.IsChart {
		t.Error("a 'Top ...' title should set the chart flag")
	}
	if len(section.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(section.Items))
	}

	album := section.Items[0]
	if album.Kind != models.HomeItemAlbum {
		t.Fatalf("item 0 kind = %q, want album", album.Kind)
	}
	if album.Album.ID != "MPREb_rum" || album.Album.Title != "Rumours" {
		t.Errorf("album = %+v", album.Album)
	}
	if album.Album.Year == nil || *album.Album.Year != 1977 {
		t.Errorf("album year = %v, want 1977", album.Album.Year)
	}
	if album.ThumbnailURL() != "https://img/rumours.jpg" {
		t.Errorf("album thumbnail = %q", album.ThumbnailURL())
	}

	playlist := section.Items[1]
	if playlist.Kind != models.HomeItemPlaylist || playlist.Playlist.ID != "PLsoft" {
		t.Errorf("item 1 = %+v", playlist)
	}
	if playlist.Playlist.IsAlbum() {
		t.Error("PL id must not classify as album")
	}

	artist := section.Items[2]
	if artist.Kind != models.HomeItemArtist || artist.Artist.ID != "UCfm123" {
		t.Errorf("item 2 = %+v", artist)
	}
}

func TestParseHomeSections_Shelf(t *testing.T) {
	shelf := `{"musicShelfRenderer": {
		"title": {"runs": [{"text": "Quick picks"}]},
		"contents": [
			{"musicResponsiveListItemRenderer": ` + songRendererFixture + `},
			{"musicResponsiveListItemRenderer": {"flexColumns": []}}
		]
	}}`
	sections := ParseHomeSections(mustDoc(t, feedDoc(shelf)))
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	section := sections[0]
	if section.IsChart {
		t.Error("'Quick picks' is not a chart title")
	}
	if len(section.Items) != 1 {
		t.Fatalf("got %d items, want 1 (item without video id is dropped, sibling kept)", len(section.Items))
	}
	if id, ok := section.Items[0].VideoID(); !ok || id != "vid123" {
		t.Errorf("VideoID = %q, %v", id, ok)
	}
}

func TestParseHomeSections_Grid(t *testing.T) {
	grid := `{"gridRenderer": {
		"header": {"gridHeaderRenderer": {"title": {"runs": [{"text": "Moods & genres"}]}}},
		"items": [
			{"musicNavigationButtonRenderer": {
				"buttonText": {"runs": [{"text": "Chill"}]},
				"clickCommand": {"browseEndpoint": {"browseId": "FEmusic_moods", "params": "chill_params"}}
			}},
			{"musicNavigationButtonRenderer": {
				"buttonText": {"runs": [{"text": "Focus"}]},
				"clickCommand": {"browseEndpoint": {"browseId": "FEmusic_moods", "params": "focus_params"}}
			}},
			{"musicNavigationButtonRenderer": {
				"buttonText": {"runs": [{"text": "Broken"}]},
				"clickCommand": {}
			}}
		]
	}}`
	sections := ParseHomeSections(mustDoc(t, feedDoc(grid)))
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	items := sections[0].Items
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (button without browse id dropped)", len(items))
	}
	first, second := items[0], items[1]
	if first.ItemID() != "FEmusic_moods_chill_params" {
		t.Errorf("first id = %q, want params-disambiguated id", first.ItemID())
	}
	if second.ItemID() != "FEmusic_moods_focus_params" {
		t.Errorf("second id = %q", second.ItemID())
	}
	if first.ItemID() == second.ItemID() {
		t.Error("categories sharing a browse id must not collide")
	}
	if first.ItemTitle() != "Chill" {
		t.Errorf("first title = %q", first.ItemTitle())
	}
}

func TestParseHomeSections_EmptySectionDropped(t *testing.T) {
	empty := `{"musicCarouselShelfRenderer": {
		"header": {"musicCarouselShelfBasicHeaderRenderer": {"title": {"runs": [{"text": "Nothing here"}]}}},
		"contents": []
	}}`
	sections := ParseHomeSections(mustDoc(t, feedDoc(empty+","+carouselSectionFixture)))
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1 (empty section must vanish, not appear empty)", len(sections))
	}
	if sections[0].Title != "Top albums this week" {
		t.Errorf("surviving section = %q", sections[0].Title)
	}
}

func TestParseHomeSections_UnknownRendererDropped(t *testing.T) {
	sections := ParseHomeSections(mustDoc(t, feedDoc(`{"musicDescriptionShelfRenderer": {}}`)))
	if sections != nil {
		t.Errorf("unknown section renderer should yield nothing, got %+v", sections)
	}
}

func TestParseHomeSections_ContinuationEnvelope(t *testing.T) {
	doc := mustDoc(t, `{"continuationContents": {"sectionListContinuation": {
		"contents": [`+carouselSectionFixture+`],
		"continuations": [{"nextContinuationData": {"continuation": "feed_token_2"}}]
	}}}`)
	sections := ParseHomeSections(doc)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if token := HomeContinuation(doc); token.Token != "feed_token_2" || !token.HasMore() {
		t.Errorf("continuation = %+v", token)
	}
}

func TestHomeContinuation_InitialShape(t *testing.T) {
	doc := mustDoc(t, `{"contents": {"singleColumnBrowseResultsRenderer": {"tabs": [
		{"tabRenderer": {"content": {"sectionListRenderer": {
			"contents": [],
			"continuations": [{"nextContinuationData": {"continuation": "feed_token_1"}}]
		}}}}
	]}}}`)
	if token := HomeContinuation(doc); token.Token != "feed_token_1" {
		t.Errorf("token = %q, want feed_token_1", token.Token)
	}
}

func TestHomeContinuation_Absent(t *testing.T) {
	token := HomeContinuation(mustDoc(t, feedDoc(carouselSectionFixture)))
	if token.HasMore() {
		t.Errorf("document without continuations should yield an empty token, got %q", token.Token)
	}
}

func TestParseHomeSections_TwoRowWatchFallback(t *testing.T) {
	shelf := `{"musicCarouselShelfRenderer": {
		"header": {"musicCarouselShelfBasicHeaderRenderer": {"title": {"runs": [{"text": "Videos"}]}}},
		"contents": [{"musicTwoRowItemRenderer": {
			"title": {"runs": [{"text": "Dreams (Live)"}]},
			"subtitle": {"runs": [{"text": "Fleetwood Mac"}]},
			"navigationEndpoint": {"watchEndpoint": {"videoId": "vid999"}}
		}}]
	}}`
	sections := ParseHomeSections(mustDoc(t, feedDoc(shelf)))
	if len(sections) != 1 || len(sections[0].Items) != 1 {
		t.Fatalf("sections = %+v", sections)
	}
	item := sections[0].Items[0]
	if item.Kind != models.HomeItemSong {
		t.Fatalf("kind = %q, want song", item.Kind)
	}
	if item.Song.ID != "vid999" || item.Song.Title != "Dreams (Live)" {
		t.Errorf("song = %+v", item.Song)
	}
	if len(item.Song.Artists) != 1 || item.Song.Artists[0].Name != "Fleetwood Mac" {
		t.Errorf("artists = %+v", item.Song.Artists)
	}
}
