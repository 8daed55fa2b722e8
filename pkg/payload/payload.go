package payload

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/campuskit/campus-portal/pkg/apperror"
)

// Payload is an opaque byte sequence plus the MIME content type it was
// uploaded with. Records embed it in its raw form; only the read API layer
// re-encodes it for transport.
type Payload struct {
	Bytes       []byte
	ContentType string
}

// New validates and builds a payload from raw upload bytes.
func New(data []byte, contentType string) (Payload, error) {
	if len(data) == 0 {
		return Payload{}, apperror.Validation("file must not be empty")
	}
	contentType = strings.TrimSpace(contentType)
	if contentType == "" || !strings.Contains(contentType, "/") {
		return Payload{}, apperror.Validation("content type must be a valid MIME type")
	}
	return Payload{Bytes: data, ContentType: contentType}, nil
}

// Encode renders the payload bytes as standard base64 text for embedding
// in JSON listings.
func Encode(p Payload) string {
	return base64.StdEncoding.EncodeToString(p.Bytes)
}

// Decode parses base64 text back into a payload carrying contentType.
func Decode(text, contentType string) (Payload, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", apperror.ErrEncoding, err)
	}
	return New(data, contentType)
}
