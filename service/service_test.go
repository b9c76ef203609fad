package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/recadosapp/recados/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	return db
}

func newServices(t *testing.T) (*PessoaService, *RecadoService) {
	t.Helper()
	db := setupDB(t)
	pessoas := NewPessoaService(db)
	return pessoas, NewRecadoService(db, pessoas)
}

func createPessoa(t *testing.T, s *PessoaService, nome, email string) *model.Pessoa {
	t.Helper()
	pessoa, err := s.Create(context.Background(), CreatePessoaInput{
		Nome:     nome,
		Email:    email,
		Password: "1234",
	})
	require.NoError(t, err)
	return pessoa
}
