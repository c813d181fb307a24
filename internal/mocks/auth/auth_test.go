package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCredentials(t *testing.T) {
	creds := NewStaticCredentials("tok")
	got, ok := creds.Credential()
	require.True(t, ok)
	assert.Equal(t, "tok", got)

	creds.ClearErr = errors.New("read-only")
	require.Error(t, creds.Clear(context.Background()))
	assert.Equal(t, 1, creds.ClearCalls())

	_, ok = creds.Credential()
	assert.False(t, ok)
}

func TestStaticCredentials_Anonymous(t *testing.T) {
	_, ok := NewStaticCredentials("").Credential()
	assert.False(t, ok)
}

func TestRecordingBlobStore(t *testing.T) {
	ctx := context.Background()
	blobs := NewRecordingBlobStore("https://cdn.test")

	url, err := blobs.Put(ctx, []byte("pdf"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/1", url)

	_, err = blobs.Put(ctx, nil, "application/pdf")
	require.Error(t, err)

	blobs.Err = errors.New("bucket missing")
	_, err = blobs.Put(ctx, []byte("x"), "text/plain")
	require.Error(t, err)

	puts := blobs.Puts()
	require.Len(t, puts, 1)
	assert.Equal(t, BlobPut{Data: []byte("pdf"), ContentType: "application/pdf"}, puts[0])
}
