package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonalFile is a document a teacher keeps in their own locker. Only the
// owning teacher may list or download it.
type PersonalFile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	OwnerTeacherID uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_teacher_id"`
	FileData       []byte    `gorm:"type:bytea;not null" json:"-"`
	ContentType    string    `gorm:"size:100;not null" json:"content_type"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *PersonalFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
