package handler

// CreateStoryRequest is the POST /api/stories payload. No field is
// validated server-side; required-field enforcement lives in the
// stories table constraints. Unknown fields sent by older clients
// (timestamp, a client-generated id) are ignored by the binder.
type CreateStoryRequest struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Category   string            `json:"category"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	MediaFiles []MediaDescriptor `json:"mediaFiles"`
}

// MediaDescriptor is one attachment reference as sent by the client.
// Only url is guaranteed to be present.
type MediaDescriptor struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type StoryResponse struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Category   string          `json:"category"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	CreatedAt  string          `json:"created_at"`
	MediaFiles []MediaResponse `json:"mediaFiles"`
}

type MediaResponse struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type CreateStoryResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
