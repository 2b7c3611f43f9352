package repositories

import "errors"

var (
	// ErrDuplicate indica violação de unicidade na camada de armazenamento
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound indica que a atualização não encontrou o registro
	ErrNotFound = errors.New("record not found")
)
