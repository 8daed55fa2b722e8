package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
)

type NoticeRepository interface {
	CreateTeacherNotice(ctx context.Context, notice *entity.TeacherNotice) error
	FindTeacherNoticeByID(ctx context.Context, id uuid.UUID) (*entity.TeacherNotice, error)
	FindAllTeacherNotices(ctx context.Context) ([]entity.TeacherNotice, error)

	CreateHODNotice(ctx context.Context, notice *entity.HODNotice) error
	FindHODNoticeByID(ctx context.Context, id uuid.UUID) (*entity.HODNotice, error)
	FindAllHODNotices(ctx context.Context) ([]entity.HODNotice, error)
}

type noticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) CreateTeacherNotice(ctx context.Context, notice *entity.TeacherNotice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) FindTeacherNoticeByID(ctx context.Context, id uuid.UUID) (*entity.TeacherNotice, error) {
	var notice entity.TeacherNotice
	if err := r.db.WithContext(ctx).First(&notice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) FindAllTeacherNotices(ctx context.Context) ([]entity.TeacherNotice, error) {
	var notices []entity.TeacherNotice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *noticeRepository) CreateHODNotice(ctx context.Context, notice *entity.HODNotice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) FindHODNoticeByID(ctx context.Context, id uuid.UUID) (*entity.HODNotice, error) {
	var notice entity.HODNotice
	if err := r.db.WithContext(ctx).First(&notice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) FindAllHODNotices(ctx context.Context) ([]entity.HODNotice, error) {
	var notices []entity.HODNotice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}
