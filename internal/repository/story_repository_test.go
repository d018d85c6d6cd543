package repository

import (
	"testing"

	"github.com/ellamuslich/sela-kota/internal/model"
	"github.com/go-playground/assert/v2"
)

func TestMediaCodec_RoundTrip(t *testing.T) {
	media := []model.Media{
		{Type: "image", URL: "https://host/a.jpg", Name: "a.jpg"},
		{Type: "video", URL: "https://host/b.mp4", Name: "b.mp4"},
	}

	raw, err := encodeMedia(media)
	assert.Equal(t, nil, err)

	decoded, err := decodeMedia(raw)
	assert.Equal(t, nil, err)
	assert.Equal(t, media, decoded)
}

func TestEncodeMedia_NilBecomesEmptyArray(t *testing.T) {
	raw, err := encodeMedia(nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, "[]", string(raw))
}

func TestDecodeMedia_EmptyColumn(t *testing.T) {
	decoded, err := decodeMedia(nil)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, decoded)
	assert.Equal(t, 0, len(decoded))
}

func TestDecodeMedia_JSONNull(t *testing.T) {
	decoded, err := decodeMedia([]byte("null"))
	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, decoded)
	assert.Equal(t, 0, len(decoded))
}
