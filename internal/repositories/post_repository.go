package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
)

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	FindById(ctx context.Context, id string) (*db_models.Post, error)
	ListFeed(ctx context.Context, filter request_models.PostFeedFilter) ([]db_models.Post, int64, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Post, error)
	ListFeatured(ctx context.Context, limit int) ([]db_models.Post, error)
	Update(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error

	InsertComment(ctx context.Context, comment *db_models.PostComment) error
	FindComment(ctx context.Context, commentID string) (*db_models.PostComment, error)
	DeleteComment(ctx context.Context, commentID string) error
	FindLike(ctx context.Context, postID, accountID string) (*db_models.PostLike, error)
	InsertLike(ctx context.Context, like *db_models.PostLike) error
	DeleteLike(ctx context.Context, postID, accountID string) error
	CountLikes(ctx context.Context, postID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (p *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return p.db.WithContext(ctx).Create(post).Error
}

func (p *postRepository) FindById(ctx context.Context, id string) (*db_models.Post, error) {
	var post db_models.Post
	err := p.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Likes").
		First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (p *postRepository) ListFeed(ctx context.Context, filter request_models.PostFeedFilter) ([]db_models.Post, int64, error) {
	query := p.db.WithContext(ctx).Model(&db_models.Post{})

	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var posts []db_models.Post
	err := query.
		Preload("Likes").
		Order("featured DESC, created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&posts).Error

	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (p *postRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := p.db.WithContext(ctx).
		Preload("Likes").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *postRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := p.db.WithContext(ctx).
		Preload("Likes").
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return p.db.WithContext(ctx).Save(post).Error
}

func (p *postRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&db_models.PostComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&db_models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Post{}, "id = ?", id).Error
	})
}

func (p *postRepository) IncrementViewCount(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (p *postRepository) InsertComment(ctx context.Context, comment *db_models.PostComment) error {
	return p.db.WithContext(ctx).Create(comment).Error
}

func (p *postRepository) FindComment(ctx context.Context, commentID string) (*db_models.PostComment, error) {
	var comment db_models.PostComment
	err := p.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &comment, nil
}

func (p *postRepository) DeleteComment(ctx context.Context, commentID string) error {
	return p.db.WithContext(ctx).Delete(&db_models.PostComment{}, "id = ?", commentID).Error
}

func (p *postRepository) FindLike(ctx context.Context, postID, accountID string) (*db_models.PostLike, error) {
	var like db_models.PostLike
	err := p.db.WithContext(ctx).
		First(&like, "post_id = ? AND account_id = ?", postID, accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &like, nil
}

func (p *postRepository) InsertLike(ctx context.Context, like *db_models.PostLike) error {
	return p.db.WithContext(ctx).Create(like).Error
}

func (p *postRepository) DeleteLike(ctx context.Context, postID, accountID string) error {
	return p.db.WithContext(ctx).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Delete(&db_models.PostLike{}).Error
}

func (p *postRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error

	return count, err
}
