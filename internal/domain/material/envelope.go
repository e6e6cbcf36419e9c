package material

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path"
	"strings"
)

// Multipart part names of a create or update request.
const (
	PartData = "data"
	PartFile = "file"
)

// Upload is a file chosen in the form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Envelope is the submission of a draft: every non-file field as one JSON
// document, plus the file only when one was chosen. Create and update share it.
type Envelope struct {
	Data []byte
	File *Upload
}

// NewEnvelope serializes d. file may be nil, meaning "keep the stored file".
func NewEnvelope(d Draft, file *Upload) (Envelope, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode draft: %w", err)
	}
	if file != nil && len(file.Data) == 0 {
		file = nil
	}
	return Envelope{Data: data, File: file}, nil
}

// HasFile reports whether the envelope replaces the stored file.
func (e Envelope) HasFile() bool { return e.File != nil }

// Encode renders the envelope as a multipart/form-data body.
func (e Envelope) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField(PartData, string(e.Data)); err != nil {
		return nil, "", fmt.Errorf("write data part: %w", err)
	}
	if e.File != nil {
		if err := writeFilePart(w, e.File); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, f *Upload) error {
	name := path.Base(strings.ReplaceAll(f.Filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, PartFile, name))
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	return nil
}
