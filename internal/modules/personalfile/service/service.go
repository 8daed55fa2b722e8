package personalfile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/modules/personalfile/dto"
	"github.com/campuskit/campus-portal/internal/modules/personalfile/repository"
	"github.com/campuskit/campus-portal/pkg/apperror"
	"github.com/campuskit/campus-portal/pkg/payload"
	"github.com/campuskit/campus-portal/pkg/validator"
)

type PersonalFileService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateFileInput, file payload.Payload) (*dto.FileMeta, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dto.FileResponse, error)
	GetFile(ctx context.Context, ownerID, id uuid.UUID) (payload.Payload, error)
}

type personalFileService struct {
	repo repository.PersonalFileRepository
}

func NewPersonalFileService(repo repository.PersonalFileRepository) PersonalFileService {
	return &personalFileService{repo: repo}
}

func (s *personalFileService) Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateFileInput, file payload.Payload) (*dto.FileMeta, error) {
	title := validator.CleanText(input.Title)
	if title == "" {
		return nil, apperror.Validation("title must not be empty")
	}

	record := &entity.PersonalFile{
		Title:          title,
		OwnerTeacherID: ownerID,
		FileData:       file.Bytes,
		ContentType:    file.ContentType,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &dto.FileMeta{
		ID:          record.ID,
		Title:       record.Title,
		ContentType: record.ContentType,
		CreatedAt:   record.CreatedAt,
	}, nil
}

func (s *personalFileService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dto.FileResponse, error) {
	files, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FileResponse, 0, len(files))
	for _, f := range files {
		responses = append(responses, dto.FileResponse{
			ID:          f.ID,
			Title:       f.Title,
			ContentType: f.ContentType,
			FileBase64:  payload.Encode(payload.Payload{Bytes: f.FileData, ContentType: f.ContentType}),
			CreatedAt:   f.CreatedAt,
		})
	}
	return responses, nil
}

// GetFile returns the stored bytes only to the owning teacher. A foreign id
// reads as not found rather than forbidden so ids do not leak existence.
func (s *personalFileService) GetFile(ctx context.Context, ownerID, id uuid.UUID) (payload.Payload, error) {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payload.Payload{}, apperror.ErrNotFound
		}
		return payload.Payload{}, err
	}

	if file.OwnerTeacherID != ownerID {
		return payload.Payload{}, apperror.ErrNotFound
	}

	return payload.Payload{Bytes: file.FileData, ContentType: file.ContentType}, nil
}
