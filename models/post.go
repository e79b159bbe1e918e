package models

import (
	"time"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Post) TableName() string {
	return "posts"
}

// PostCreate fields are pointers so a missing field and an empty string are
// reported differently.
type PostCreate struct {
	Title   *string `json:"title" binding:"required,min=1,max=200"`
	Content *string `json:"content" binding:"required,min=1,max=1000"`
}

// PostUpdate is a partial update. A nil field is left untouched; at least
// one of the two must be present.
type PostUpdate struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1,max=1000"`
}

type PostOut struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPostOut(p *Post) PostOut {
	return PostOut{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPostOutList(posts []Post) []PostOut {
	out := make([]PostOut, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostOut(&posts[i]))
	}
	return out
}
