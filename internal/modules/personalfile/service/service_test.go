package personalfile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/modules/personalfile/dto"
	"github.com/campuskit/campus-portal/pkg/apperror"
	"github.com/campuskit/campus-portal/pkg/payload"
)

type fakeFileRepo struct {
	files []entity.PersonalFile
}

func (r *fakeFileRepo) Create(ctx context.Context, f *entity.PersonalFile) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.files = append(r.files, *f)
	return nil
}

func (r *fakeFileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PersonalFile, error) {
	for _, f := range r.files {
		if f.ID == id {
			clone := f
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFileRepo) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.PersonalFile, error) {
	var out []entity.PersonalFile
	for _, f := range r.files {
		if f.OwnerTeacherID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func docPayload(t *testing.T) payload.Payload {
	t.Helper()
	p, err := payload.New([]byte("lesson plan contents"), "application/msword")
	require.NoError(t, err)
	return p
}

func TestCreateAndListOwnerScoped(t *testing.T) {
	repo := &fakeFileRepo{}
	svc := NewPersonalFileService(repo)

	owner := uuid.New()
	other := uuid.New()

	_, err := svc.Create(context.Background(), owner, dto.CreateFileInput{Title: "Lesson plan"}, docPayload(t))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), other, dto.CreateFileInput{Title: "Other teacher's plan"}, docPayload(t))
	require.NoError(t, err)

	ownFiles, err := svc.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, ownFiles, 1)
	assert.Equal(t, "Lesson plan", ownFiles[0].Title)
}

func TestCreateEmptyTitle(t *testing.T) {
	repo := &fakeFileRepo{}
	svc := NewPersonalFileService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateFileInput{Title: "  <i> </i> "}, docPayload(t))
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, repo.files)
}

func TestGetFileOwnerOnly(t *testing.T) {
	repo := &fakeFileRepo{}
	svc := NewPersonalFileService(repo)

	owner := uuid.New()
	meta, err := svc.Create(context.Background(), owner, dto.CreateFileInput{Title: "Lesson plan"}, docPayload(t))
	require.NoError(t, err)

	file, err := svc.GetFile(context.Background(), owner, meta.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("lesson plan contents"), file.Bytes)

	// Another teacher's principal gets not-found, not forbidden.
	_, err = svc.GetFile(context.Background(), uuid.New(), meta.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetFileUnknownID(t *testing.T) {
	svc := NewPersonalFileService(&fakeFileRepo{})

	_, err := svc.GetFile(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
