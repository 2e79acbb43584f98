package repositories

import (
	"errors"

	"chat_rating_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type ownerBadgeRepository struct {
	repository
}

type OwnerBadgeRepository interface {
	GetOne(ownerID string) (*models.OwnerBadge, error)
	Upsert(badge *models.OwnerBadge) error
}

func NewOwnerBadgeRepository(db *pg.DB) OwnerBadgeRepository {
	return &ownerBadgeRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *ownerBadgeRepository) GetOne(ownerID string) (*models.OwnerBadge, error) {
	badge := &models.OwnerBadge{}

	err := r.db.Model(badge).
		Where("owner_id = ?", ownerID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return badge, err
}

func (r *ownerBadgeRepository) Upsert(badge *models.OwnerBadge) error {
	_, err := r.db.Model(badge).
		OnConflict("(owner_id) DO UPDATE").
		Set("rating = EXCLUDED.rating, vote_count = EXCLUDED.vote_count, updated_at = now()").
		Insert()

	return err
}
