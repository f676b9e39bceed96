package photo

import (
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func answer(s string) func(string) (string, error) {
	return func(string) (string, error) { return s, nil }
}

func mapOpen(files fstest.MapFS) func(string) (fs.File, error) {
	return func(name string) (fs.File, error) { return files.Open(name) }
}

func TestEncodeAndStripDataURI(t *testing.T) {
	uri := EncodeDataURI(Asset{MIME: "image/png", Data: []byte("hello")})
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", uri)
	assert.Equal(t, "aGVsbG8=", StripDataURI(uri))
	assert.Equal(t, "aGVsbG8=", StripDataURI("aGVsbG8="))
	assert.Equal(t, "", StripDataURI("data:image/png;base64,"))

	assert.Equal(t, "data:application/octet-stream;base64,", EncodeDataURI(Asset{}))
}

func TestFilePicker_Pick(t *testing.T) {
	files := fstest.MapFS{
		"face.png":  {Data: pngHeader},
		"notes.txt": {Data: []byte("plain text")},
		"empty.png": {Data: nil},
	}

	t.Run("success", func(t *testing.T) {
		p := &FilePicker{Prompt: answer(" face.png \n"), Open: mapOpen(files)}
		a, err := p.Pick(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "image/png", a.MIME)
		assert.Equal(t, pngHeader, a.Data)

		uri := EncodeDataURI(a)
		_, err = base64.StdEncoding.DecodeString(StripDataURI(uri))
		require.NoError(t, err)
	})

	t.Run("empty answer cancels", func(t *testing.T) {
		p := &FilePicker{Prompt: answer("   "), Open: mapOpen(files)}
		_, err := p.Pick(context.Background())
		require.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("permission denied", func(t *testing.T) {
		p := &FilePicker{
			Prompt: answer("secret.png"),
			Open: func(name string) (fs.File, error) {
				return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
			},
		}
		_, err := p.Pick(context.Background())
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("missing file", func(t *testing.T) {
		p := &FilePicker{Prompt: answer("nope.png"), Open: mapOpen(files)}
		_, err := p.Pick(context.Background())
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("not an image", func(t *testing.T) {
		p := &FilePicker{Prompt: answer("notes.txt"), Open: mapOpen(files)}
		_, err := p.Pick(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not an image")
	})

	t.Run("empty file", func(t *testing.T) {
		p := &FilePicker{Prompt: answer("empty.png"), Open: mapOpen(files)}
		_, err := p.Pick(context.Background())
		require.Error(t, err)
	})

	t.Run("prompt failure", func(t *testing.T) {
		boom := errors.New("stdin closed")
		p := &FilePicker{Prompt: func(string) (string, error) { return "", boom }, Open: mapOpen(files)}
		_, err := p.Pick(context.Background())
		require.ErrorIs(t, err, boom)
	})
}
