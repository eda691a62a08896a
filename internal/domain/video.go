package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transformation holds the player rendering options stored alongside a
// video. All fields are optional; absent means "let the player decide".
type Transformation struct {
	Height  *int `json:"height,omitempty" bson:"height,omitempty"`
	Width   *int `json:"width,omitempty" bson:"width,omitempty"`
	Quality *int `json:"quality,omitempty" bson:"quality,omitempty" validate:"omitempty,min=1,max=100"`
}

type Video struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	VideoURL       string             `json:"videoUrl" bson:"videoUrl"`
	ThumbnailURL   string             `json:"thumbnailUrl" bson:"thumbnailUrl"`
	FileID         string             `json:"fileId,omitempty" bson:"fileId,omitempty"`
	Controls       bool               `json:"controls" bson:"controls"`
	Transformation *Transformation    `json:"transformation,omitempty" bson:"transformation,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateVideoInput is the request body for POST /videos. The owner is never
// part of the input; it comes from the authenticated session.
type CreateVideoInput struct {
	Title          string          `json:"title" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	VideoURL       string          `json:"videoUrl" validate:"required"`
	ThumbnailURL   string          `json:"thumbnailUrl" validate:"required"`
	FileID         string          `json:"fileId,omitempty"`
	Controls       *bool           `json:"controls,omitempty"`
	Transformation *Transformation `json:"transformation,omitempty"`
}
