package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Post struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	AuthorName  string
	AuthorPhoto string
	Title       string `gorm:"size:200"`
	Content     string `gorm:"type:text"`
	Destination string `gorm:"index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	ItineraryID *uuid.UUID     `gorm:"type:uuid"`
	TripID      *uuid.UUID     `gorm:"type:uuid"`
	ViewCount   int            `gorm:"default:0"`
	Featured    bool           `gorm:"default:false"`

	Comments []PostComment
	Likes    []PostLike
}

type PostComment struct {
	BaseModel
	PostID    uuid.UUID `gorm:"type:uuid;index"`
	AccountID uuid.UUID `gorm:"type:uuid"`
	UserName  string
	UserPhoto string
	Content   string `gorm:"type:text"`
}

type PostLike struct {
	BaseModel
	PostID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_post_like_once"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_post_like_once"`
}
