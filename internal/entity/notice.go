package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NoticeGeneral    = "general"
	NoticeAttendance = "attendance"
	NoticeHoliday    = "holiday"
	NoticeExam       = "exam"
	NoticePlacement  = "placement"
)

// ValidNoticeType reports whether t belongs to the closed notice type set.
func ValidNoticeType(t string) bool {
	switch t {
	case NoticeGeneral, NoticeAttendance, NoticeHoliday, NoticeExam, NoticePlacement:
		return true
	}
	return false
}

// TeacherNotice is a circular addressed to the teaching staff.
type TeacherNotice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	NoticeType  string    `gorm:"size:20;not null" json:"notice_type"`
	FileData    []byte    `gorm:"type:bytea;not null" json:"-"`
	ContentType string    `gorm:"size:100;not null" json:"content_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *TeacherNotice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// HODNotice is a circular addressed to the heads of department.
type HODNotice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	NoticeType  string    `gorm:"size:20;not null" json:"notice_type"`
	FileData    []byte    `gorm:"type:bytea;not null" json:"-"`
	ContentType string    `gorm:"size:100;not null" json:"content_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *HODNotice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
