package notice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/modules/notice/dto"
	"github.com/campuskit/campus-portal/internal/modules/notice/repository"
	"github.com/campuskit/campus-portal/pkg/apperror"
	"github.com/campuskit/campus-portal/pkg/payload"
	"github.com/campuskit/campus-portal/pkg/validator"
)

// Minimum description length on the general notice upload path.
const minGeneralDescription = 10

type NoticeService interface {
	CreateTeacherNotice(ctx context.Context, input dto.CreateNoticeInput, file payload.Payload) (*dto.NoticeMeta, error)
	ListTeacherNotices(ctx context.Context) ([]dto.NoticeResponse, error)
	GetTeacherNoticeFile(ctx context.Context, id uuid.UUID) (payload.Payload, error)

	CreateHODNotice(ctx context.Context, input dto.CreateNoticeInput, file payload.Payload) (*dto.NoticeMeta, error)
	ListHODNotices(ctx context.Context) ([]dto.NoticeResponse, error)
	GetHODNoticeFile(ctx context.Context, id uuid.UUID) (payload.Payload, error)
}

type noticeService struct {
	repo repository.NoticeRepository
}

func NewNoticeService(repo repository.NoticeRepository) NoticeService {
	return &noticeService{repo: repo}
}

func validateNotice(input dto.CreateNoticeInput) (description string, err error) {
	description = validator.CleanText(input.Description)
	if description == "" {
		return "", apperror.Validation("description must not be empty")
	}
	if !entity.ValidNoticeType(input.NoticeType) {
		return "", apperror.Validation("notice type must be one of: general, attendance, holiday, exam, placement")
	}
	if input.NoticeType == entity.NoticeGeneral && len(description) < minGeneralDescription {
		return "", apperror.Validation("description must be at least 10 characters for general notices")
	}
	return description, nil
}

func (s *noticeService) CreateTeacherNotice(ctx context.Context, input dto.CreateNoticeInput, file payload.Payload) (*dto.NoticeMeta, error) {
	description, err := validateNotice(input)
	if err != nil {
		return nil, err
	}

	notice := &entity.TeacherNotice{
		Description: description,
		NoticeType:  input.NoticeType,
		FileData:    file.Bytes,
		ContentType: file.ContentType,
	}

	if err := s.repo.CreateTeacherNotice(ctx, notice); err != nil {
		return nil, err
	}

	return &dto.NoticeMeta{
		ID:          notice.ID,
		Description: notice.Description,
		NoticeType:  notice.NoticeType,
		ContentType: notice.ContentType,
		CreatedAt:   notice.CreatedAt,
	}, nil
}

func (s *noticeService) ListTeacherNotices(ctx context.Context) ([]dto.NoticeResponse, error) {
	notices, err := s.repo.FindAllTeacherNotices(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, dto.NoticeResponse{
			ID:          n.ID,
			Description: n.Description,
			NoticeType:  n.NoticeType,
			ContentType: n.ContentType,
			FileBase64:  payload.Encode(payload.Payload{Bytes: n.FileData, ContentType: n.ContentType}),
			CreatedAt:   n.CreatedAt,
		})
	}
	return responses, nil
}

func (s *noticeService) GetTeacherNoticeFile(ctx context.Context, id uuid.UUID) (payload.Payload, error) {
	notice, err := s.repo.FindTeacherNoticeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payload.Payload{}, apperror.ErrNotFound
		}
		return payload.Payload{}, err
	}
	return payload.Payload{Bytes: notice.FileData, ContentType: notice.ContentType}, nil
}

func (s *noticeService) CreateHODNotice(ctx context.Context, input dto.CreateNoticeInput, file payload.Payload) (*dto.NoticeMeta, error) {
	description, err := validateNotice(input)
	if err != nil {
		return nil, err
	}

	notice := &entity.HODNotice{
		Description: description,
		NoticeType:  input.NoticeType,
		FileData:    file.Bytes,
		ContentType: file.ContentType,
	}

	if err := s.repo.CreateHODNotice(ctx, notice); err != nil {
		return nil, err
	}

	return &dto.NoticeMeta{
		ID:          notice.ID,
		Description: notice.Description,
		NoticeType:  notice.NoticeType,
		ContentType: notice.ContentType,
		CreatedAt:   notice.CreatedAt,
	}, nil
}

func (s *noticeService) ListHODNotices(ctx context.Context) ([]dto.NoticeResponse, error) {
	notices, err := s.repo.FindAllHODNotices(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, dto.NoticeResponse{
			ID:          n.ID,
			Description: n.Description,
			NoticeType:  n.NoticeType,
			ContentType: n.ContentType,
			FileBase64:  payload.Encode(payload.Payload{Bytes: n.FileData, ContentType: n.ContentType}),
			CreatedAt:   n.CreatedAt,
		})
	}
	return responses, nil
}

func (s *noticeService) GetHODNoticeFile(ctx context.Context, id uuid.UUID) (payload.Payload, error) {
	notice, err := s.repo.FindHODNoticeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payload.Payload{}, apperror.ErrNotFound
		}
		return payload.Payload{}, err
	}
	return payload.Payload{Bytes: notice.FileData, ContentType: notice.ContentType}, nil
}
