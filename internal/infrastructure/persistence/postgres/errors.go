package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// translate converte erros do GORM para os erros dos repositories
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(repositories.ErrDuplicate, err)
	}
	return err
}

// notFound indica registro inexistente; os repositories retornam (nil, nil) nesse caso
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// validID indica se o id tem o formato de UUID das chaves primárias.
// Ids fora do formato são tratados como inexistentes.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// updateAll grava todas as colunas do model (inclusive valores zero), exceto id e created_at
func updateAll(db *gorm.DB, model any) error {
	result := db.Model(model).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
