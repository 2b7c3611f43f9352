package ports

import (
	"context"
	"io"
)

// StoredObject descreve um arquivo a ser armazenado
type StoredObject struct {
	OwnerID     string
	Role        string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BlobStorage abstrai o armazenamento de arquivos (imagens de perfil)
type BlobStorage interface {
	// Store grava o arquivo e retorna a URL pública
	Store(ctx context.Context, obj StoredObject) (string, error)
	// Delete remove o arquivo pela URL; URLs inexistentes não são erro
	Delete(ctx context.Context, url string) error
}
