package model

import (
	"strings"
	"time"
)

const (
	CategoryTranquil  = "tranquil"
	CategoryGrounded  = "grounded"
	CategoryHappy     = "happy"
	CategoryEnergised = "energised"
	CategoryCurious   = "curious"

	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Categories returns the closed set of emotion tags in display order.
func Categories() []string {
	return []string{
		CategoryTranquil,
		CategoryGrounded,
		CategoryHappy,
		CategoryEnergised,
		CategoryCurious,
	}
}

type Story struct {
	ID        int64
	Title     string
	Content   string
	Category  string
	Latitude  float64
	Longitude float64
	Media     []Media
	CreatedAt time.Time
}

// Media is one externally hosted attachment. The struct is stored
// as-is in the stories.media jsonb column, so it carries json tags.
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// MediaTypeFromURL is the legacy guess carried over from the first
// backend drafts: anything whose URL contains "video" is a video,
// everything else is an image. It is only consulted when a client
// sends a descriptor without an explicit type, and the result is
// stored once at write time.
func MediaTypeFromURL(url string) string {
	if strings.Contains(url, MediaTypeVideo) {
		return MediaTypeVideo
	}
	return MediaTypeImage
}
