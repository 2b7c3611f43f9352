package services

import (
	"context"
	"io"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
)

// MaxImageSize é o tamanho máximo de uma imagem de perfil
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageUpload é um arquivo de imagem recebido na requisição
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Validate verifica tipo e tamanho da imagem
func (u ImageUpload) Validate() error {
	if !allowedImageTypes[u.ContentType] {
		return domainerrors.NewValidationError("file", domainerrors.ErrInvalidImage.Error())
	}
	if u.Size <= 0 || u.Size > MaxImageSize {
		return domainerrors.NewValidationError("file", domainerrors.ErrInvalidImage.Error())
	}
	return nil
}

// replaceImage grava a nova imagem, persiste a URL e só então remove a anterior.
// Falha ao remover a anterior deixa um órfão no bucket, nunca uma URL quebrada.
func replaceImage(
	ctx context.Context,
	storage ports.BlobStorage,
	logger ports.Logger,
	obj ports.StoredObject,
	oldURL *string,
	persist func(ctx context.Context, url string) error,
) (string, error) {
	url, err := storage.Store(ctx, obj)
	if err != nil {
		return "", domainerrors.NewUpstreamError("storage", err)
	}

	if err := persist(ctx, url); err != nil {
		if delErr := storage.Delete(ctx, url); delErr != nil {
			logger.Warn("failed to remove uploaded image after persist failure", "url", url, "error", delErr)
		}
		return "", err
	}

	if oldURL != nil && *oldURL != "" && *oldURL != url {
		if err := storage.Delete(ctx, *oldURL); err != nil {
			logger.Warn("failed to remove previous image", "url", *oldURL, "error", err)
		}
	}

	return url, nil
}
