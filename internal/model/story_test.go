package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestMediaTypeFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://host/a.jpg", MediaTypeImage},
		{"https://res.cloudinary.com/demo/video/upload/clip.mp4", MediaTypeVideo},
		// Known gaps of the substring guess, kept on purpose for
		// type-less descriptors:
		{"https://host/clip.mp4", MediaTypeImage},
		{"https://host/video-of-cat.jpg", MediaTypeVideo},
		{"", MediaTypeImage},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, MediaTypeFromURL(c.url))
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"tranquil", "grounded", "happy", "energised", "curious"}, Categories())
}
