package apiclient

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeForm(t *testing.T, body []byte, contentType string) []part {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(strings.NewReader(string(body)), params["boundary"])
	var parts []part
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			return parts
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, part{name: p.FormName(), filename: p.FileName(), data: string(data)})
	}
}

func TestForm_PreservesInsertionOrder(t *testing.T) {
	form := NewForm().
		Field("name", "Grade 9").
		OptionalField("description", "").
		File("image", File{Filename: "icon.png", ContentType: "image/png", Data: []byte{0x89, 'P'}}, "icon").
		Field("visibility", "")

	assert.Equal(t, []string{"name", "image", "icon", "visibility"}, form.Names())
	assert.Equal(t, 4, form.Len())

	body, ct, err := form.Encode()
	require.NoError(t, err)
	parts := decodeForm(t, body, ct)
	require.Len(t, parts, 4)
	assert.Equal(t, "", parts[3].data)
	assert.Equal(t, parts[1].data, parts[2].data)
	assert.Equal(t, "icon.png", parts[2].filename)
}

func TestForm_LegacyNameMatchingPrimaryIsSkipped(t *testing.T) {
	form := NewForm().File("file", File{Filename: "a.pdf", Data: []byte("x")}, "file", "", "pdf")
	assert.Equal(t, []string{"file", "pdf"}, form.Names())
}

func TestForm_EncodeIsRepeatable(t *testing.T) {
	form := NewForm().
		Field("title", "Geometry").
		File("file", File{Filename: "geo.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7")}, "pdf")

	body1, ct1, err := form.Encode()
	require.NoError(t, err)
	body2, ct2, err := form.Encode()
	require.NoError(t, err)

	assert.Equal(t, decodeForm(t, body1, ct1), decodeForm(t, body2, ct2))
}

func TestForm_FileDefaults(t *testing.T) {
	form := NewForm().File("upload", File{Data: []byte("raw")})
	body, ct, err := form.Encode()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "multipart/form-data; boundary="))
	assert.Contains(t, string(body), "Content-Type: "+defaultFileContentType)

	parts := decodeForm(t, body, ct)
	require.Len(t, parts, 1)
	assert.Equal(t, "upload", parts[0].filename)
}

func TestForm_FileCopyIsIndependentOfCaller(t *testing.T) {
	file := File{Filename: "a.pdf", Data: []byte("one")}
	form := NewForm().File("file", file)
	file.Filename = "b.pdf"

	body, ct, err := form.Encode()
	require.NoError(t, err)
	parts := decodeForm(t, body, ct)
	assert.Equal(t, "a.pdf", parts[0].filename)
}

func TestForm_QuotesAreEscapedInFilename(t *testing.T) {
	form := NewForm().File("file", File{Filename: `my "best" book.pdf`, Data: []byte("x")})
	body, ct, err := form.Encode()
	require.NoError(t, err)

	parts := decodeForm(t, body, ct)
	require.Len(t, parts, 1)
	assert.Equal(t, `my "best" book.pdf`, parts[0].filename)
}
