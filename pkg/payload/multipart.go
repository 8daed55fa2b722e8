package payload

import (
	"io"
	"mime/multipart"

	"github.com/campuskit/campus-portal/pkg/apperror"
)

// FromMultipart reads one uploaded file part into a payload, rejecting it
// before the read when it exceeds maxBytes.
func FromMultipart(fh *multipart.FileHeader, maxBytes int64) (Payload, error) {
	if fh == nil {
		return Payload{}, apperror.Validation("file is required")
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return Payload{}, apperror.Validation("file exceeds the maximum allowed size")
	}

	src, err := fh.Open()
	if err != nil {
		return Payload{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return Payload{}, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return New(data, contentType)
}
