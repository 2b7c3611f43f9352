// Package dbtest fornece um banco SQLite em memória com o schema da aplicação para testes.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui; permite uso a partir de suites ginkgo
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

var _ TB = (testing.TB)(nil)

// New cria um banco isolado por chamada, já migrado
func New(t TB) *gorm.DB {
	t.Helper()

	db, err := Open()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// Open cria o banco sem registrar limpeza; quem chama deve fechar a conexão
func Open() (*gorm.DB, error) {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), postgres.GormConfig("error"))
	if err != nil {
		return nil, err
	}

	// Uma conexão: o banco em memória vive enquanto ela estiver aberta
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(postgres.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return db, nil
}
