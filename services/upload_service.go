package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/deviill007/ShakeHubInShop/configs"
)

var allowedImageFormats = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// UploadService relays image files to Cloudinary and hands back the public
// URL. No retry; every failure surfaces to the caller as-is.
type UploadService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewUploadService(cfg configs.CloudinaryConfig) (*UploadService, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &UploadService{cld: cld, folder: cfg.Folder}, nil
}

func (s *UploadService) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedImageFormats[ext] {
		return "", &ValidationError{Message: "Unsupported image format: " + ext}
	}

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}
