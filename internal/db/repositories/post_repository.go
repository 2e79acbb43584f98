package repositories

import (
	"errors"
	"time"

	"chat_rating_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type postRepository struct {
	repository
}

type PostRepository interface {
	GetOne(postID string) (*models.Post, error)
	GetOneByTarget(targetID string) (*models.Post, error)
	Update(post *models.Post) error
	GetManyUnfinalized(createdBefore time.Time) ([]*models.Post, error)
	DeleteTarget(target *models.Target) error
}

func NewPostRepository(db *pg.DB) PostRepository {
	return &postRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *postRepository) GetOne(postID string) (*models.Post, error) {
	post := &models.Post{}

	err := r.db.Model(post).
		Relation("Targets", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr("sequence_position ASC"), nil
		}).
		Where("post.id = ?", postID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return post, err
}

func (r *postRepository) GetOneByTarget(targetID string) (*models.Post, error) {
	target := &models.Target{}

	err := r.db.Model(target).
		Where("id = ?", targetID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.GetOne(target.PostID)
}

func (r *postRepository) Update(post *models.Post) error {
	_, err := r.db.Model(post).WherePK().Update()
	return err
}

func (r *postRepository) GetManyUnfinalized(createdBefore time.Time) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)

	err := r.db.Model(&posts).
		Relation("Targets", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr("sequence_position ASC"), nil
		}).
		Where("finalized = ?", false).
		Where("created_at < ?", createdBefore).
		Select()

	return posts, err
}

func (r *postRepository) DeleteTarget(target *models.Target) error {
	_, err := r.db.Model(target).WherePK().Delete()
	return err
}
