package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFileInput struct {
	Title string `form:"title" binding:"required,max=200"`
}

type FileMeta struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type FileResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"content_type"`
	FileBase64  string    `json:"file_base64"`
	CreatedAt   time.Time `json:"created_at"`
}
