package repositories

import (
	"errors"

	"chat_rating_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type ratingVoteRepository struct {
	repository
}

type RatingVoteRepository interface {
	Upsert(vote *models.RatingVote) error
	GetOne(postID, voterID string) (*models.RatingVote, error)
	GetManyByPost(postID string) ([]*models.RatingVote, error)
}

func NewRatingVoteRepository(db *pg.DB) RatingVoteRepository {
	return &ratingVoteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *ratingVoteRepository) Upsert(vote *models.RatingVote) error {
	_, err := r.db.Model(vote).
		OnConflict("(post_id, voter_id) DO UPDATE").
		Set("rating = EXCLUDED.rating, counted = EXCLUDED.counted, updated_at = now()").
		Insert()

	return err
}

func (r *ratingVoteRepository) GetOne(postID, voterID string) (*models.RatingVote, error) {
	vote := &models.RatingVote{}

	err := r.db.Model(vote).
		Where("post_id = ?", postID).
		Where("voter_id = ?", voterID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return vote, err
}

func (r *ratingVoteRepository) GetManyByPost(postID string) ([]*models.RatingVote, error) {
	votes := make([]*models.RatingVote, 0)

	err := r.db.Model(&votes).
		Where("post_id = ?", postID).
		Select()

	return votes, err
}
