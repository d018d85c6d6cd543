package handler

import (
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/ellamuslich/sela-kota/internal/model"
	"github.com/gin-gonic/gin"
)

type StoryStore interface {
	Create(story *model.Story) error
	GetAll() ([]model.Story, error)
	Count() (int, error)
}

type StoryHandler struct {
	repository StoryStore
}

func NewStoryHandler(repository StoryStore) *StoryHandler {
	return &StoryHandler{repository: repository}
}

// ListStories returns every story, newest first. The response is a
// bare JSON array, empty when the table is empty.
func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.repository.GetAll()
	if err != nil {
		slog.Error("error fetching stories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := make([]StoryResponse, 0, len(stories))
	for _, s := range stories {
		res = append(res, toStoryResponse(s))
	}

	c.JSON(http.StatusOK, res)
}

func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("unparseable story payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story := model.Story{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Media:     toMedia(req.MediaFiles),
	}

	if err := h.repository.Create(&story); err != nil {
		slog.Error("error creating story", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CreateStoryResponse{
		ID:      story.ID,
		Message: "Story created successfully!",
	})
}

func (h *StoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, model.Categories())
}

func (h *StoryHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toStoryResponse(s model.Story) StoryResponse {
	media := make([]MediaResponse, 0, len(s.Media))
	for _, m := range s.Media {
		media = append(media, MediaResponse{
			Type: m.Type,
			URL:  m.URL,
			Name: m.Name,
		})
	}

	return StoryResponse{
		ID:         s.ID,
		Title:      s.Title,
		Content:    s.Content,
		Category:   s.Category,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		MediaFiles: media,
	}
}

// toMedia normalizes client descriptors at write time: the client-sent
// type wins, a type-less descriptor falls back to the URL guess, and a
// missing name defaults to the URL basename.
func toMedia(descriptors []MediaDescriptor) []model.Media {
	media := make([]model.Media, 0, len(descriptors))
	for _, d := range descriptors {
		mediaType := d.Type
		if mediaType == "" {
			mediaType = model.MediaTypeFromURL(d.URL)
		}

		name := d.Name
		if name == "" {
			name = path.Base(d.URL)
		}

		media = append(media, model.Media{
			Type: mediaType,
			URL:  d.URL,
			Name: name,
		})
	}
	return media
}
