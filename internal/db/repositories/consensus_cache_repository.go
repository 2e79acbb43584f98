package repositories

import (
	"errors"
	"time"

	"chat_rating_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type consensusCacheRepository struct {
	repository
}

type ConsensusCacheRepository interface {
	Get(postID string, state models.WindowState) (*models.ConsensusCacheEntry, error)
	Set(entry *models.ConsensusCacheEntry) error
	DeleteManyByPost(postID string) error
}

func NewConsensusCacheRepository(db *pg.DB) ConsensusCacheRepository {
	return &consensusCacheRepository{
		repository: repository{
			db: db,
		},
	}
}

// Get returns nil for a missing or expired entry; the stored expires_at is
// authoritative, not the row's presence.
func (r *consensusCacheRepository) Get(postID string, state models.WindowState) (*models.ConsensusCacheEntry, error) {
	entry := &models.ConsensusCacheEntry{}

	err := r.db.Model(entry).
		Where("post_id = ?", postID).
		Where("window_state = ?", state).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if entry.Expired(time.Now()) {
		return nil, nil
	}

	return entry, nil
}

func (r *consensusCacheRepository) Set(entry *models.ConsensusCacheEntry) error {
	_, err := r.db.Model(entry).
		OnConflict("(post_id, window_state) DO UPDATE").
		Set("payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at").
		Insert()

	return err
}

func (r *consensusCacheRepository) DeleteManyByPost(postID string) error {
	_, err := r.db.Model((*models.ConsensusCacheEntry)(nil)).
		Where("post_id = ?", postID).
		Delete()

	return err
}
