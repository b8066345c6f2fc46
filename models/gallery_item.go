package models

import (
	"path"
	"strings"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (m MediaType) IsValid() bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

type GalleryCategory string

const (
	CategoryWishesGranted GalleryCategory = "wishes-granted"
	CategoryEvents        GalleryCategory = "events"
	CategoryBehindScenes  GalleryCategory = "behind-scenes"
)

func (c GalleryCategory) IsValid() bool {
	switch c {
	case CategoryWishesGranted, CategoryEvents, CategoryBehindScenes:
		return true
	}
	return false
}

// GalleryItem is a public media entry. DisplayOrder defines the public sort
// position and is kept contiguous and unique across reorders.
type GalleryItem struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"index"`
	Description string `json:"description" gorm:"type:text"`

	MediaURL      string    `json:"media_url" gorm:"not null"`
	MediaType     MediaType `json:"media_type" gorm:"type:varchar(8)"`
	IsExternalURL bool      `json:"is_external_url" gorm:"default:false"`

	Category GalleryCategory `json:"category" gorm:"type:varchar(16);index"`

	// Optional attribution
	ChildName string `json:"child_name,omitempty"`
	ChildAge  *int   `json:"child_age,omitempty"`

	IsFeatured   bool `json:"is_featured" gorm:"default:false"`
	DisplayOrder int  `json:"display_order" gorm:"column:display_order;default:0;index"`

	Timestamps
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".avi": true, ".mkv": true, ".m4v": true,
}

// InferMediaType guesses the media type from a URL's extension when the
// client did not state one explicitly. Unknown extensions fall back to image.
func InferMediaType(mediaURL string) MediaType {
	ext := strings.ToLower(path.Ext(strings.Split(mediaURL, "?")[0]))
	if videoExtensions[ext] {
		return MediaTypeVideo
	}
	return MediaTypeImage
}
