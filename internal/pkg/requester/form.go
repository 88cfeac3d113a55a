package requester

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

type formFile struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

// Form is a multipart/form-data body. Fields and files keep their insertion order.
type Form struct {
	fields [][2]string
	files  []formFile
}

// NewForm returns an empty Form.
func NewForm() *Form {
	return &Form{}
}

// Set appends a text field.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

// AddFile appends a file part. An empty contentType defaults to application/octet-stream.
func (f *Form) AddFile(field, filename, contentType string, content []byte) *Form {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	f.files = append(f.files, formFile{field: field, filename: filename, contentType: contentType, content: content})
	return f
}

// Value returns the first value of the named text field.
func (f *Form) Value(name string) (string, bool) {
	for _, kv := range f.fields {
		if kv[0] == name {
			return kv[1], true
		}
	}
	return "", false
}

// HasFile reports whether a file part was added for field.
func (f *Form) HasFile(field string) bool {
	for _, file := range f.files {
		if file.field == field {
			return true
		}
	}
	return false
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}

	for _, file := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.filename))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
