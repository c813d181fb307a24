package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

const defaultFileContentType = "application/octet-stream"

// File is the binary part of a multipart form.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type formPart struct {
	name  string
	value string
	file  *File
}

// Form is an ordered multipart field set. Parts are written exactly in the
// order they were added, so building the same form twice yields the same fields.
type Form struct {
	parts []formPart
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{}
}

// Field appends a text field. Empty values are still sent.
func (f *Form) Field(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// OptionalField appends a text field only when value is non-empty.
func (f *Form) OptionalField(name, value string) *Form {
	if value == "" {
		return f
	}
	return f.Field(name, value)
}

// File appends a file under name and then under every legacy name, in order.
// Some backend routes still read the upload from an older key, so the same
// bytes are sent under each name.
func (f *Form) File(name string, file File, legacyNames ...string) *Form {
	fc := file
	f.parts = append(f.parts, formPart{name: name, file: &fc})
	for _, alt := range legacyNames {
		if alt == "" || alt == name {
			continue
		}
		f.parts = append(f.parts, formPart{name: alt, file: &fc})
	}
	return f
}

// Names lists the part names in write order.
func (f *Form) Names() []string {
	names := make([]string, len(f.parts))
	for i, p := range f.parts {
		names[i] = p.name
	}
	return names
}

// Len returns the number of parts.
func (f *Form) Len() int { return len(f.parts) }

// Encode writes the form and returns the body and its content type.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("write field %q: %w", p.name, err)
			}
			continue
		}
		if err := writeFilePart(w, p.name, p.file); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, name string, file *File) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultFileContentType
	}
	filename := file.Filename
	if filename == "" {
		filename = name
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(name), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create file part %q: %w", name, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("write file part %q: %w", name, err)
	}
	return nil
}
