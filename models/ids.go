package models

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Identifier prefixes used by the upstream service. Entity type can only be
// inferred from these; responses carry no explicit discriminator.
const (
	ChannelIDPrefix         = "UC"
	AlbumIDPrefix           = "MPRE"
	AlbumReleaseIDPrefix    = "OLAK"
	PodcastShowIDPrefix     = "MPSPP"
	LyricsBrowseIDPrefix    = "MPLYt"
	RadioPlaylistIDPrefix   = "RD"
	PlaylistIDPrefix        = "PL"
	LibraryPlaylistIDPrefix = "VL"
)

// IsChannelID reports whether id is a real artist channel id.
func IsChannelID(id string) bool {
	return strings.HasPrefix(id, ChannelIDPrefix)
}

// IsAlbumID reports whether id is an album-style id rather than a playlist id.
func IsAlbumID(id string) bool {
	return strings.HasPrefix(id, AlbumIDPrefix) || strings.HasPrefix(id, AlbumReleaseIDPrefix)
}

// IsPodcastShowID reports whether id is a podcast show id.
func IsPodcastShowID(id string) bool {
	return strings.HasPrefix(id, PodcastShowIDPrefix)
}

// IsLyricsBrowseID reports whether id is a lyrics tab browse id.
func IsLyricsBrowseID(id string) bool {
	return strings.HasPrefix(id, LyricsBrowseIDPrefix)
}

// IsRadioPlaylistID reports whether id is a radio/mix playlist id.
func IsRadioPlaylistID(id string) bool {
	return strings.HasPrefix(id, RadioPlaylistIDPrefix)
}

// SyntheticArtistID derives a stable id for an inline artist credit that
// carries no channel id in the source. The same name always hashes to the
// same id, so repeated parses and cross-document credits agree.
func SyntheticArtistID(name string) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(name)))
	return hex.EncodeToString(sum[:])
}

// IsNavigableID reports whether id resolves to a real browsable page when
// passed back to the service. Synthetic hash ids, hash-shaped strings and
// UUID-shaped strings are never navigable.
func IsNavigableID(id string) bool {
	if id == "" {
		return false
	}
	if _, err := uuid.Parse(id); err == nil {
		return false
	}
	if isHexHash(id) {
		return false
	}
	return IsChannelID(id)
}

func isHexHash(s string) bool {
	if len(s) != sha1.Size*2 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
