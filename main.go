// Command kaset-sub000 is a response dump inspector: it decodes a saved
// endpoint response document and runs one of the parsers over it, printing
// the resulting entities as JSON. It performs no network I/O; dumps come
// from the transport layer's debug output.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	simplejson "github.com/bitly/go-simplejson"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	appConfig "github.com/sozercan/kaset-sub000/config"
	"github.com/sozercan/kaset-sub000/models"
	"github.com/sozercan/kaset-sub000/ytmusic"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment")
	}
	appConfig.NewConfig()

	log.SetFormatter(&nested.Formatter{
		HideKeys:    appConfig.Config.Logging.HideKeys,
		FieldsOrder: []string{"module", "function"},
	})
	if level, err := log.ParseLevel(appConfig.Config.Logging.Level); err == nil {
		log.SetLevel(level)
	}

	file := flag.String("file", "", "path to a dumped response document")
	parse := flag.String("parse", "home",
		"parser to run: home|song|artist|playlist|playlist-continuation|library|lyrics|lyrics-id|podcast|podcast-show|podcast-episodes")
	id := flag.String("id", "", "video or browse id, for parsers that target one")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("reading %s: %v", *file, err)
	}
	doc, err := simplejson.NewJson(data)
	if err != nil {
		log.Fatalf("decoding %s: %v", *file, err)
	}

	out, err := runParser(doc, *parse, *id)
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("encoding result: %v", err)
	}
	fmt.Println(string(encoded))
}

func runParser(doc *simplejson.Json, parse, id string) (interface{}, error) {
	switch parse {
	case "home":
		sections := ytmusic.ParseHomeSections(doc)
		return struct {
			Sections     []models.HomeSection `json:"sections"`
			Continuation models.Continuation  `json:"continuation"`
		}{capSections(sections), ytmusic.HomeContinuation(doc)}, nil
	case "song":
		return ytmusic.ParseNowPlayingSong(doc, id)
	case "artist":
		return ytmusic.ParseArtistDetail(doc, id), nil
	case "playlist":
		return ytmusic.ParsePlaylistDetail(doc, id), nil
	case "playlist-continuation":
		songs, continuation := ytmusic.ParsePlaylistContinuation(doc)
		return struct {
			Tracks       []models.Song       `json:"tracks"`
			Continuation models.Continuation `json:"continuation"`
		}{songs, continuation}, nil
	case "library":
		return ytmusic.ParseLibraryPlaylists(doc), nil
	case "lyrics":
		return ytmusic.ParseLyrics(doc), nil
	case "lyrics-id":
		browseID, ok := ytmusic.LyricsBrowseID(doc)
		return struct {
			BrowseID string `json:"browse_id,omitempty"`
			Found    bool   `json:"found"`
		}{browseID, ok}, nil
	case "podcast":
		return ytmusic.ParsePodcastSections(doc), nil
	case "podcast-show":
		return ytmusic.ParsePodcastShowDetail(doc, id), nil
	case "podcast-episodes":
		return ytmusic.ParsePodcastEpisodes(doc), nil
	}
	return nil, fmt.Errorf("unknown parser %q", parse)
}

// capSections applies the DUMP_MAX_ITEMS limit to keep terminal output
// readable for large feed dumps.
func capSections(sections []models.HomeSection) []models.HomeSection {
	max := appConfig.Config.Dump.MaxItems
	if max == 0 {
		return sections
	}
	for i := range sections {
		if len(sections[i].Items) > max {
			sections[i].Items = sections[i].Items[:max]
		}
	}
	return sections
}
