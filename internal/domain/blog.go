package domain

import (
	"time"
)

type BlogCategory string

const (
	BlogCategoryHairCare    BlogCategory = "hair-care"
	BlogCategoryBeardCare   BlogCategory = "beard-care"
	BlogCategoryStylingTips BlogCategory = "styling-tips"
)

func (c BlogCategory) Valid() bool {
	switch c {
	case BlogCategoryHairCare, BlogCategoryBeardCare, BlogCategoryStylingTips:
		return true
	}
	return false
}

type BlogPost struct {
	ID        string        `json:"id"`
	Title     LocalizedText `json:"title"`
	Content   LocalizedText `json:"content"`
	Excerpt   LocalizedText `json:"excerpt"`
	Slug      string        `json:"slug"`
	Category  BlogCategory  `json:"category"`
	ImageURL  *string       `json:"image_url,omitempty"`
	Published bool          `json:"published"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CreateBlogPostDTO struct {
	Title     LocalizedText `json:"title" binding:"required,min=1,langs"`
	Content   LocalizedText `json:"content" binding:"required,min=1,langs"`
	Excerpt   LocalizedText `json:"excerpt" binding:"omitempty,langs"`
	Slug      string        `json:"slug" binding:"omitempty,slug,max=200"`
	Category  BlogCategory  `json:"category" binding:"required,oneof=hair-care beard-care styling-tips"`
	ImageURL  *string       `json:"image_url" binding:"omitempty,max=500"`
	Published bool          `json:"published"`
}

type UpdateBlogPostDTO struct {
	Title     LocalizedText `json:"title" binding:"omitempty,min=1,langs"`
	Content   LocalizedText `json:"content" binding:"omitempty,min=1,langs"`
	Excerpt   LocalizedText `json:"excerpt" binding:"omitempty,langs"`
	Slug      *string       `json:"slug" binding:"omitempty,slug,max=200"`
	Category  *BlogCategory `json:"category" binding:"omitempty,oneof=hair-care beard-care styling-tips"`
	ImageURL  *string       `json:"image_url" binding:"omitempty,max=500"`
	Published *bool         `json:"published"`
}

type BlogFilter struct {
	Category      *BlogCategory
	OnlyPublished bool
}
