package service

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/rubymeaddows/Ravensandquill/pkg/util"
)

// DefaultProfileImage is served when the user uploads nothing.
const DefaultProfileImage = "/static/profile_icon.png"

var ErrBadFilename = errors.New("invalid image filename")

// ImageStore writes uploaded profile images to local disk under the
// configured uploads directory.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save stores an uploaded image with a sanitized filename and returns
// its public URL. A nil header yields the default image.
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return DefaultProfileImage, nil
	}

	name := util.SanitizeFilename(fh.Filename)
	if name == "" {
		return "", ErrBadFilename
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/static/uploads/" + name, nil
}
