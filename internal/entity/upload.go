package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentUpload is an assignment or document submitted by a student.
type StudentUpload struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerStudentID    uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_student_id"`
	Subject           string    `gorm:"size:100;not null" json:"subject"`
	Description       string    `gorm:"type:text" json:"description"`
	OriginatorAddress string    `gorm:"size:64" json:"originator_address,omitempty"`
	FileData          []byte    `gorm:"type:bytea;not null" json:"-"`
	ContentType       string    `gorm:"size:100;not null" json:"content_type"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *StudentUpload) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UploadIndexEntry is one row of the student-to-uploads ownership index.
// Rows are append-only; the serial key preserves insertion order, which is
// the order the account's upload list is reported in.
type UploadIndexEntry struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	StudentID uuid.UUID `gorm:"type:uuid;index;not null" json:"student_id"`
	UploadID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"upload_id"`
}
