package studentupload

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/modules/studentupload/dto"
	"github.com/campuskit/campus-portal/internal/modules/studentupload/repository"
	"github.com/campuskit/campus-portal/internal/token"
	"github.com/campuskit/campus-portal/pkg/apperror"
	"github.com/campuskit/campus-portal/pkg/payload"
	"github.com/campuskit/campus-portal/pkg/validator"
)

type StudentUploadService interface {
	Create(ctx context.Context, studentID uuid.UUID, input dto.CreateUploadInput, file payload.Payload, originatorAddr string) (*dto.UploadMeta, error)
	ListByOwner(ctx context.Context, studentID uuid.UUID) ([]dto.UploadResponse, error)
	GetFile(ctx context.Context, principal token.Principal, id uuid.UUID) (payload.Payload, error)
}

type studentUploadService struct {
	repo repository.StudentUploadRepository
}

func NewStudentUploadService(repo repository.StudentUploadRepository) StudentUploadService {
	return &studentUploadService{repo: repo}
}

// Create persists the upload and then links it into the owner's index.
// The two writes are deliberately not one transaction: a failed link leaves
// the record reachable by id but absent from the owner's listing, which is
// the consistency window callers are documented to tolerate.
func (s *studentUploadService) Create(ctx context.Context, studentID uuid.UUID, input dto.CreateUploadInput, file payload.Payload, originatorAddr string) (*dto.UploadMeta, error) {
	subject := validator.CleanText(input.Subject)
	if subject == "" {
		return nil, apperror.Validation("subject must not be empty")
	}
	description := validator.CleanText(input.Description)

	upload := &entity.StudentUpload{
		OwnerStudentID:    studentID,
		Subject:           subject,
		Description:       description,
		OriginatorAddress: originatorAddr,
		FileData:          file.Bytes,
		ContentType:       file.ContentType,
	}

	if err := s.repo.Create(ctx, upload); err != nil {
		return nil, err
	}

	if err := s.repo.AppendIndex(ctx, studentID, upload.ID); err != nil {
		log.Printf("upload %s created but not linked to student %s: %v", upload.ID, studentID, err)
	}

	return &dto.UploadMeta{
		ID:          upload.ID,
		Subject:     upload.Subject,
		Description: upload.Description,
		ContentType: upload.ContentType,
		CreatedAt:   upload.CreatedAt,
	}, nil
}

// ListByOwner reads through the ownership index, so it reflects the index's
// append order and only ids linked to this student.
func (s *studentUploadService) ListByOwner(ctx context.Context, studentID uuid.UUID) ([]dto.UploadResponse, error) {
	ids, err := s.repo.IndexByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	uploads, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]entity.StudentUpload, len(uploads))
	for _, u := range uploads {
		byID[u.ID] = u
	}

	responses := make([]dto.UploadResponse, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			continue
		}
		responses = append(responses, dto.UploadResponse{
			ID:          u.ID,
			Subject:     u.Subject,
			Description: u.Description,
			ContentType: u.ContentType,
			FileBase64:  payload.Encode(payload.Payload{Bytes: u.FileData, ContentType: u.ContentType}),
			CreatedAt:   u.CreatedAt,
		})
	}
	return responses, nil
}

// GetFile returns the stored bytes. Students only see their own uploads;
// admin and teacher principals may read any upload by id.
func (s *studentUploadService) GetFile(ctx context.Context, principal token.Principal, id uuid.UUID) (payload.Payload, error) {
	upload, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payload.Payload{}, apperror.ErrNotFound
		}
		return payload.Payload{}, err
	}

	if principal.Role == token.RoleStudent && upload.OwnerStudentID.String() != principal.SubjectID {
		return payload.Payload{}, apperror.ErrNotFound
	}

	return payload.Payload{Bytes: upload.FileData, ContentType: upload.ContentType}, nil
}
