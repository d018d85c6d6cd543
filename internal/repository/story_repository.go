package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/ellamuslich/sela-kota/internal/model"
)

type StoryRepository struct {
	db *sql.DB
}

func NewStoryRepository(db *sql.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// Create inserts one story row. The store assigns id and created_at,
// which are written back into the passed story.
func (r *StoryRepository) Create(story *model.Story) error {
	media, err := encodeMedia(story.Media)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO stories(title, content, category, latitude, longitude, media)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, story.Title, story.Content, story.Category, story.Latitude, story.Longitude, media).
		Scan(&story.ID, &story.CreatedAt)
}

func (r *StoryRepository) GetAll() ([]model.Story, error) {
	rows, err := r.db.Query(`
		SELECT id, title, content, category, latitude, longitude, media, created_at
		FROM stories
		ORDER BY created_at DESC
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []model.Story
	for rows.Next() {
		var s model.Story
		var media []byte
		err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.Category, &s.Latitude, &s.Longitude, &media, &s.CreatedAt)
		if err != nil {
			return nil, err
		}

		s.Media, err = decodeMedia(media)
		if err != nil {
			return nil, err
		}

		stories = append(stories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stories, nil
}

func (r *StoryRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM stories
	`).Scan(&total)
	return total, err
}

func encodeMedia(media []model.Media) ([]byte, error) {
	if media == nil {
		media = []model.Media{}
	}
	return json.Marshal(media)
}

// decodeMedia parses the jsonb media column. Empty or null columns
// decode to an empty slice, never nil, so the wire layer can rely on
// mediaFiles always being a JSON array.
func decodeMedia(raw []byte) ([]model.Media, error) {
	media := []model.Media{}
	if len(raw) == 0 {
		return media, nil
	}
	if err := json.Unmarshal(raw, &media); err != nil {
		return nil, err
	}
	if media == nil {
		media = []model.Media{}
	}
	return media, nil
}
