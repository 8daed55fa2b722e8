package notice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/modules/notice/dto"
	"github.com/campuskit/campus-portal/pkg/apperror"
	"github.com/campuskit/campus-portal/pkg/payload"
)

type fakeNoticeRepo struct {
	teacherNotices []entity.TeacherNotice
	hodNotices     []entity.HODNotice
}

func (r *fakeNoticeRepo) CreateTeacherNotice(ctx context.Context, n *entity.TeacherNotice) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.teacherNotices = append(r.teacherNotices, *n)
	return nil
}

func (r *fakeNoticeRepo) FindTeacherNoticeByID(ctx context.Context, id uuid.UUID) (*entity.TeacherNotice, error) {
	for _, n := range r.teacherNotices {
		if n.ID == id {
			clone := n
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNoticeRepo) FindAllTeacherNotices(ctx context.Context) ([]entity.TeacherNotice, error) {
	return append([]entity.TeacherNotice(nil), r.teacherNotices...), nil
}

func (r *fakeNoticeRepo) CreateHODNotice(ctx context.Context, n *entity.HODNotice) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.hodNotices = append(r.hodNotices, *n)
	return nil
}

func (r *fakeNoticeRepo) FindHODNoticeByID(ctx context.Context, id uuid.UUID) (*entity.HODNotice, error) {
	for _, n := range r.hodNotices {
		if n.ID == id {
			clone := n
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNoticeRepo) FindAllHODNotices(ctx context.Context) ([]entity.HODNotice, error) {
	return append([]entity.HODNotice(nil), r.hodNotices...), nil
}

func pdfPayload(t *testing.T) payload.Payload {
	t.Helper()
	p, err := payload.New([]byte("%PDF-1.4 exam timetable"), "application/pdf")
	require.NoError(t, err)
	return p
}

func TestCreateTeacherNotice(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := NewNoticeService(repo)

	meta, err := svc.CreateTeacherNotice(context.Background(), dto.CreateNoticeInput{
		Description: "Exam schedule for semester 2",
		NoticeType:  entity.NoticeExam,
	}, pdfPayload(t))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meta.ID)
	assert.Equal(t, entity.NoticeExam, meta.NoticeType)
	require.Len(t, repo.teacherNotices, 1)
	assert.Equal(t, []byte("%PDF-1.4 exam timetable"), repo.teacherNotices[0].FileData,
		"stored bytes must be raw, not transport-encoded")
}

// Validation failures must never persist a partial record.
func TestCreateNoticeValidation(t *testing.T) {
	cases := []struct {
		name  string
		input dto.CreateNoticeInput
	}{
		{"empty description", dto.CreateNoticeInput{Description: "   ", NoticeType: entity.NoticeExam}},
		{"markup-only description", dto.CreateNoticeInput{Description: "<p></p>", NoticeType: entity.NoticeExam}},
		{"unknown notice type", dto.CreateNoticeInput{Description: "a perfectly fine description", NoticeType: "party"}},
		{"short general description", dto.CreateNoticeInput{Description: "too short", NoticeType: entity.NoticeGeneral}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeNoticeRepo{}
			svc := NewNoticeService(repo)

			_, err := svc.CreateTeacherNotice(context.Background(), tc.input, pdfPayload(t))
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Empty(t, repo.teacherNotices, "nothing may be persisted on validation failure")

			_, err = svc.CreateHODNotice(context.Background(), tc.input, pdfPayload(t))
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Empty(t, repo.hodNotices)
		})
	}
}

func TestGeneralNoticeAcceptsLongDescription(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := NewNoticeService(repo)

	_, err := svc.CreateHODNotice(context.Background(), dto.CreateNoticeInput{
		Description: "Staff meeting moved to Friday",
		NoticeType:  entity.NoticeGeneral,
	}, pdfPayload(t))
	assert.NoError(t, err)
}

func TestListEncodesRoundTrippableBase64(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := NewNoticeService(repo)

	original := pdfPayload(t)
	_, err := svc.CreateTeacherNotice(context.Background(), dto.CreateNoticeInput{
		Description: "Exam schedule for semester 2",
		NoticeType:  entity.NoticeExam,
	}, original)
	require.NoError(t, err)

	listed, err := svc.ListTeacherNotices(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	decoded, err := payload.Decode(listed[0].FileBase64, listed[0].ContentType)
	require.NoError(t, err)
	assert.Equal(t, original.Bytes, decoded.Bytes, "listing encoding must decode to the original bytes")
}

// Repeated reads must return byte-identical payloads.
func TestGetFileIdempotent(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := NewNoticeService(repo)

	meta, err := svc.CreateHODNotice(context.Background(), dto.CreateNoticeInput{
		Description: "Department budget circular",
		NoticeType:  entity.NoticeHoliday,
	}, pdfPayload(t))
	require.NoError(t, err)

	first, err := svc.GetHODNoticeFile(context.Background(), meta.ID)
	require.NoError(t, err)
	second, err := svc.GetHODNoticeFile(context.Background(), meta.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes, second.Bytes)
	assert.Equal(t, first.ContentType, second.ContentType)
}

func TestGetFileNotFound(t *testing.T) {
	svc := NewNoticeService(&fakeNoticeRepo{})

	_, err := svc.GetTeacherNoticeFile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.GetHODNoticeFile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
