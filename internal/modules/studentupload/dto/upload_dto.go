package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUploadInput struct {
	Subject     string `form:"subject" binding:"required,max=100"`
	Description string `form:"description"`
}

type UploadMeta struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type UploadResponse struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	ContentType string    `json:"content_type"`
	FileBase64  string    `json:"file_base64"`
	CreatedAt   time.Time `json:"created_at"`
}
