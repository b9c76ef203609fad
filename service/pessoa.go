package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recadosapp/recados/model"
	"gorm.io/gorm"
)

var (
	ErrPessoaNotFound  = errors.New("pessoa não encontrada")
	ErrEmailCadastrado = errors.New("e-mail já cadastrado")
)

type CreatePessoaInput struct {
	Nome     string `json:"nome" validate:"required,min=4,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// UpdatePessoaInput carries the mutable fields only. Email is fixed at
// creation and has no update field.
type UpdatePessoaInput struct {
	Nome     *string `json:"nome" validate:"omitempty,min=4,max=100"`
	Password *string `json:"password" validate:"omitempty,min=4"`
}

type PessoaService struct {
	db *gorm.DB
}

func NewPessoaService(db *gorm.DB) *PessoaService {
	return &PessoaService{db: db}
}

// Create inserts a new pessoa. Email uniqueness is left to the store's
// constraint so there is no window between check and insert; a duplicate
// surfaces as ErrEmailCadastrado.
func (s *PessoaService) Create(ctx context.Context, in CreatePessoaInput) (*model.Pessoa, error) {
	pessoa := &model.Pessoa{
		Nome:         in.Nome,
		Email:        in.Email,
		PasswordHash: in.Password,
	}
	if err := s.db.WithContext(ctx).Create(pessoa).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailCadastrado
		}
		return nil, fmt.Errorf("error creating pessoa: %w", err)
	}
	return pessoa, nil
}

func (s *PessoaService) List(ctx context.Context) ([]model.Pessoa, error) {
	var pessoas []model.Pessoa
	if err := s.db.WithContext(ctx).Find(&pessoas).Error; err != nil {
		return nil, fmt.Errorf("error listing pessoas: %w", err)
	}
	return pessoas, nil
}

func (s *PessoaService) Get(ctx context.Context, id uint64) (*model.Pessoa, error) {
	var pessoa model.Pessoa
	if err := s.db.WithContext(ctx).First(&pessoa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPessoaNotFound
		}
		return nil, fmt.Errorf("error finding pessoa: %w", err)
	}
	return &pessoa, nil
}

func (s *PessoaService) Update(ctx context.Context, id uint64, in UpdatePessoaInput) (*model.Pessoa, error) {
	pessoa, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Nome != nil {
		pessoa.Nome = *in.Nome
	}
	if in.Password != nil {
		pessoa.PasswordHash = *in.Password
	}
	if err := s.db.WithContext(ctx).Save(pessoa).Error; err != nil {
		return nil, fmt.Errorf("error updating pessoa: %w", err)
	}
	return pessoa, nil
}

// Delete removes the pessoa and every recado that references it as sender or
// recipient. The cascade runs in one transaction instead of relying on the
// engine's foreign keys, so sqlite behaves the same as mysql.
func (s *PessoaService) Delete(ctx context.Context, id uint64) (*model.Pessoa, error) {
	pessoa, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("error starting transaction: %w", tx.Error)
	}
	if err := tx.Where("de_id = ? OR para_id = ?", id, id).Delete(&model.Recado{}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error deleting recados of pessoa %d: %w", id, err)
	}
	if err := tx.Delete(pessoa).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error deleting pessoa %d: %w", id, err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return pessoa, nil
}
