package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoticeInput struct {
	Description string `form:"description" binding:"required"`
	NoticeType  string `form:"notice_type" binding:"required"`
}

// NoticeMeta echoes the created record without its bytes.
type NoticeMeta struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	NoticeType  string    `json:"notice_type"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// NoticeResponse is the listing shape; the file travels base64-encoded.
type NoticeResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	NoticeType  string    `json:"notice_type"`
	ContentType string    `json:"content_type"`
	FileBase64  string    `json:"file_base64"`
	CreatedAt   time.Time `json:"created_at"`
}
