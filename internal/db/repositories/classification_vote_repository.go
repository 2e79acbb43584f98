package repositories

import (
	"chat_rating_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type classificationVoteRepository struct {
	repository
}

type ClassificationVoteRepository interface {
	Upsert(vote *models.ClassificationVote) error
	GetManyByTarget(targetID string) ([]*models.ClassificationVote, error)
	GetManyByPostAndVoter(postID, voterID string) ([]*models.ClassificationVote, error)
	Delete(targetID, voterID string) error
	DeleteManyByTarget(targetID string) error
}

func NewClassificationVoteRepository(db *pg.DB) ClassificationVoteRepository {
	return &classificationVoteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Upsert is a last-write-wins overwrite keyed on (target_id, voter_id), so a
// voter can never count twice toward one target.
func (r *classificationVoteRepository) Upsert(vote *models.ClassificationVote) error {
	_, err := r.db.Model(vote).
		OnConflict("(target_id, voter_id) DO UPDATE").
		Set("classification = EXCLUDED.classification, counted = EXCLUDED.counted, updated_at = now()").
		Insert()

	return err
}

func (r *classificationVoteRepository) GetManyByTarget(targetID string) ([]*models.ClassificationVote, error) {
	votes := make([]*models.ClassificationVote, 0)

	err := r.db.Model(&votes).
		Where("target_id = ?", targetID).
		Select()

	return votes, err
}

func (r *classificationVoteRepository) GetManyByPostAndVoter(postID, voterID string) ([]*models.ClassificationVote, error) {
	votes := make([]*models.ClassificationVote, 0)

	err := r.db.Model(&votes).
		Where("post_id = ?", postID).
		Where("voter_id = ?", voterID).
		Select()

	return votes, err
}

func (r *classificationVoteRepository) Delete(targetID, voterID string) error {
	_, err := r.db.Model((*models.ClassificationVote)(nil)).
		Where("target_id = ?", targetID).
		Where("voter_id = ?", voterID).
		Delete()

	return err
}

func (r *classificationVoteRepository) DeleteManyByTarget(targetID string) error {
	_, err := r.db.Model((*models.ClassificationVote)(nil)).
		Where("target_id = ?", targetID).
		Delete()

	return err
}
