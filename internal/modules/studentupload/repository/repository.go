package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
)

type StudentUploadRepository interface {
	Create(ctx context.Context, upload *entity.StudentUpload) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentUpload, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.StudentUpload, error)

	AppendIndex(ctx context.Context, studentID, uploadID uuid.UUID) error
	IndexByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error)
}

type studentUploadRepository struct {
	db *gorm.DB
}

func NewStudentUploadRepository(db *gorm.DB) StudentUploadRepository {
	return &studentUploadRepository{db: db}
}

func (r *studentUploadRepository) Create(ctx context.Context, upload *entity.StudentUpload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *studentUploadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentUpload, error) {
	var upload entity.StudentUpload
	if err := r.db.WithContext(ctx).First(&upload, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *studentUploadRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.StudentUpload, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var uploads []entity.StudentUpload
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *studentUploadRepository) AppendIndex(ctx context.Context, studentID, uploadID uuid.UUID) error {
	entry := &entity.UploadIndexEntry{StudentID: studentID, UploadID: uploadID}
	return r.db.WithContext(ctx).Create(entry).Error
}

// IndexByStudent returns the student's upload ids in append order.
func (r *studentUploadRepository) IndexByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	var entries []entity.UploadIndexEntry
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("seq ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UploadID)
	}
	return ids, nil
}
