package ytmusic

import (
	simplejson "github.com/bitly/go-simplejson"
	log "github.com/sirupsen/logrus"

	"github.com/sozercan/kaset-sub000/models"
)

const unknownShowTitle = "Unknown Show"

// ParsePodcastSections walks a podcast discovery document and returns its
// carousels as sections of shows and episodes. Item type is decided by the
// show id prefix; empty sections are dropped.
func ParsePodcastSections(doc *simplejson.Json) []models.PodcastSection {
	contents, ok := sectionListContents(doc)
	if !ok {
		return nil
	}
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var sections []models.PodcastSection
	for i := range arr {
		kind, renderer := sectionKindOf(contents.GetIndex(i))
		if kind != sectionCarousel {
			continue
		}
		header := renderer.GetPath("header", "musicCarouselShelfBasicHeaderRenderer")
		title, _ := nodeText(header.Get("title"))
		items := podcastSectionItems(renderer.Get("contents"))
		if len(items) == 0 {
			continue
		}
		sections = append(sections, models.PodcastSection{Title: title, Items: items})
	}
	return sections
}

func podcastSectionItems(contents *simplejson.Json) []models.PodcastSectionItem {
	arr, err := contents.Array()
	if err != nil {
		return nil
	}
	var items []models.PodcastSectionItem
	for i := range arr {
		kind, renderer := itemKindOf(contents.GetIndex(i))
		switch kind {
		case itemTwoRow:
			if item, ok := podcastTwoRowItem(renderer); ok {
				items = append(items, item)
			}
		case itemMultiRowListItem:
			if episode := parseEpisode(renderer); episode != nil {
				items = append(items, models.PodcastSectionItem{
					Kind:    models.PodcastItemEpisode,
					Episode: episode,
				})
			}
		}
	}
	return items
}

func podcastTwoRowItem(renderer *simplejson.Json) (models.PodcastSectionItem, bool) {
	title, _ := nodeText(renderer.Get("title"))
	if id := browseID(renderer); models.IsPodcastShowID(id) {
		author := bylineAuthor(renderer.Get("subtitle"))
		return models.PodcastSectionItem{
			Kind: models.PodcastItemShow,
			Show: &models.PodcastShow{
				ID:        id,
				Title:     title,
				Author:    author,
				Thumbnail: thumbnailURL(renderer),
			},
		}, true
	}
	if id := renderer.GetPath("navigationEndpoint", "watchEndpoint", "videoId").MustString(); id != "" {
		return models.PodcastSectionItem{
			Kind: models.PodcastItemEpisode,
			Episode: &models.PodcastEpisode{
				ID:        id,
				Title:     title,
				Thumbnail: thumbnailURL(renderer),
			},
		}, true
	}
	return models.PodcastSectionItem{}, false
}

// ParsePodcastShowDetail builds a show page. When the header cannot be
// parsed at all the result is a placeholder show for the requested id, not
// an error.
func ParsePodcastShowDetail(doc *simplejson.Json, showID string) models.PodcastShowDetail {
	detail := models.PodcastShowDetail{
		PodcastShow: models.PodcastShow{ID: showID, Title: unknownShowTitle},
	}

	header := showHeader(doc)
	if header == nil {
		log.WithFields(log.Fields{"module": "ytmusic", "show_id": showID}).
			Debug("podcast show header not recognized, returning placeholder")
	} else {
		if title, ok := nodeText(header.Get("title")); ok && title != "" {
			detail.Title = title
		}
		if author, ok := nodeText(header.Get("straplineTextOne")); ok {
			detail.Author = author
		} else if author := bylineAuthor(header.Get("subtitle")); author != "" {
			detail.Author = author
		}
		if description, ok := runText(header.GetPath(
			"description", "musicDescriptionShelfRenderer", "description",
		)); ok {
			detail.Description = description
		} else if description, ok := nodeText(header.Get("description")); ok {
			detail.Description = description
		}
		detail.Thumbnail = thumbnailURL(header)
		detail.Subscribed = headerInLibrary(header)
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
		if kind != sectionShelf {
			continue
		}
		episodes, token := shelfEpisodes(renderer)
		detail.Episodes = append(detail.Episodes, episodes...)
		if token != "" {
			detail.Continuation = models.Continuation{Token: token}
		}
	}
	return detail
}

func showHeader(doc *simplejson.Json) *simplejson.Json {
	if header, ok := doc.GetPath("header").CheckGet("musicDetailHeaderRenderer"); ok {
		return header
	}
	if header, ok := doc.GetPath("header").CheckGet("musicResponsiveHeaderRenderer"); ok {
		return header
	}
	return nil
}

// headerInLibrary infers subscription state from the presence of a remove
// from library style action on the header menu.
func headerInLibrary(header *simplejson.Json) bool {
	items := header.GetPath("menu", "menuRenderer", "items")
	arr, err := items.Array()
	if err != nil {
		return false
	}
	for i := range arr {
		item := items.GetIndex(i)
		icon := item.GetPath("toggleMenuServiceItemRenderer", "defaultIcon", "iconType").MustString()
		if icon == "" {
			icon = item.GetPath("menuServiceItemRenderer", "icon", "iconType").MustString()
		}
		switch icon {
		case "LIBRARY_REMOVE", "LIBRARY_SAVED", "BROADCAST_REMOVE":
			return true
		}
	}
	return false
}

// shelfEpisodes parses the episode items of a shelf and its continuation
// token, whether carried on the shelf or by a trailing marker item.
func shelfEpisodes(renderer *simplejson.Json) ([]models.PodcastEpisode, string) {
	token := renderer.Get("continuations").
		GetIndex(0).
		GetPath("nextContinuationData", "continuation").
		MustString()

	contents := renderer.Get("contents")
	arr, err := contents.Array()
	if err != nil {
		return nil, token
	}
	var episodes []models.PodcastEpisode
	for i := range arr {
		kind, item := itemKindOf(contents.GetIndex(i))
		switch kind {
		case itemMultiRowListItem:
			if episode := parseEpisode(item); episode != nil {
				episodes = append(episodes, *episode)
			}
		case itemContinuationMarker:
			token = item.GetPath("continuationEndpoint", "continuationCommand", "token").MustString()
		}
	}
	return episodes, token
}

// ParsePodcastEpisodes parses one further page of show episodes, in either
// continuation envelope shape.
func ParsePodcastEpisodes(doc *simplejson.Json) models.PodcastEpisodesContinuation {
	if shelf, ok := doc.GetPath("continuationContents").CheckGet("musicShelfContinuation"); ok {
		episodes, token := shelfEpisodes(shelf)
		return models.PodcastEpisodesContinuation{
			Episodes:     episodes,
			Continuation: models.Continuation{Token: token},
		}
	}

	items := doc.Get("onResponseReceivedActions").
		GetIndex(0).
		GetPath("appendContinuationItemsAction", "continuationItems")
	arr, err := items.Array()
	if err != nil {
		return models.PodcastEpisodesContinuation{}
	}
	var result models.PodcastEpisodesContinuation
	for i := range arr {
		kind, renderer := itemKindOf(items.GetIndex(i))
		switch kind {
		case itemMultiRowListItem:
			if episode := parseEpisode(renderer); episode != nil {
				result.Episodes = append(result.Episodes, *episode)
			}
		case itemContinuationMarker:
			result.Continuation.Token = renderer.
				GetPath("continuationEndpoint", "continuationCommand", "token").
				MustString()
		}
	}
	return result
}

// parseEpisode builds an episode from a multi row list item renderer.
// Episodes without a reachable video id are dropped.
func parseEpisode(renderer *simplejson.Json) *models.PodcastEpisode {
	id := renderer.GetPath("onTap", "watchEndpoint", "videoId").MustString()
	if id == "" {
		id = renderer.Get("title").Get("runs").
			GetIndex(0).
			GetPath("navigationEndpoint", "watchEndpoint", "videoId").
			MustString()
	}
	if id == "" {
		return nil
	}
	episode := &models.PodcastEpisode{ID: id, Title: unknownTitle}
	if title, ok := nodeText(renderer.Get("title")); ok && title != "" {
		episode.Title = title
	}
	if description, ok := runText(renderer.Get("description")); ok {
		episode.Description = description
	}
	if published, ok := nodeText(renderer.Get("subtitle")); ok {
		episode.Published = published
	}
	episode.Thumbnail = thumbnailURL(renderer)
	return episode
}
