package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
)

type PersonalFileRepository interface {
	Create(ctx context.Context, file *entity.PersonalFile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PersonalFile, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.PersonalFile, error)
}

type personalFileRepository struct {
	db *gorm.DB
}

func NewPersonalFileRepository(db *gorm.DB) PersonalFileRepository {
	return &personalFileRepository{db: db}
}

func (r *personalFileRepository) Create(ctx context.Context, file *entity.PersonalFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *personalFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PersonalFile, error) {
	var file entity.PersonalFile
	if err := r.db.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *personalFileRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.PersonalFile, error) {
	var files []entity.PersonalFile
	err := r.db.WithContext(ctx).
		Where("owner_teacher_id = ?", ownerID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
