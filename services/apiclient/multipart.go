package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// MultipartPayload is an opaque, already-encoded multipart body. ContentType
// carries the encoder's boundary and is applied by the transport alone; any
// caller-supplied content-type header is discarded for multipart requests.
type MultipartPayload struct {
	ContentType string
	Body        io.Reader
}

// FilePart is a single file attached to a multipart form.
type FilePart struct {
	FieldName string
	FileName  string
	Content   io.Reader
}

// NewMultipartForm encodes form fields and files into a MultipartPayload.
func NewMultipartForm(fields map[string]string, files ...FilePart) (*MultipartPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %q: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.FieldName, f.FileName)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %q: %w", f.FieldName, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("failed to copy form file %q: %w", f.FieldName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &MultipartPayload{
		ContentType: w.FormDataContentType(),
		Body:        &buf,
	}, nil
}
