package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// MaxSize caps the image read from disk.
const MaxSize = 5 << 20

// FilePicker asks for a path on the local filesystem. Prompt returns the raw
// answer; an empty answer cancels.
type FilePicker struct {
	Prompt func(label string) (string, error)
	Open   func(name string) (fs.File, error)
}

// NewFilePicker returns a picker reading from the OS filesystem.
func NewFilePicker(prompt func(label string) (string, error)) *FilePicker {
	return &FilePicker{
		Prompt: prompt,
		Open:   func(name string) (fs.File, error) { return os.Open(name) },
	}
}

func (p *FilePicker) Pick(ctx context.Context) (Asset, error) {
	path, err := p.Prompt("Photo path (empty to cancel): ")
	if err != nil {
		return Asset{}, fmt.Errorf("read photo path: %w", err)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Asset{}, ErrCancelled
	}
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}

	f, err := p.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return Asset{}, ErrPermissionDenied
		}
		return Asset{}, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return Asset{}, ErrPermissionDenied
		}
		return Asset{}, fmt.Errorf("read photo: %w", err)
	}
	if len(data) > MaxSize {
		return Asset{}, fmt.Errorf("photo larger than %d bytes", MaxSize)
	}
	if len(data) == 0 {
		return Asset{}, errors.New("photo file is empty")
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return Asset{}, fmt.Errorf("not an image: %s", mime)
	}
	return Asset{MIME: mime, Data: data}, nil
}
