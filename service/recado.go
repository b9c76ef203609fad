package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recadosapp/recados/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecadoNotFound = errors.New("recado não encontrado")

type CreateRecadoInput struct {
	Texto  string `json:"texto" validate:"required,min=2,max=200"`
	DeID   uint64 `json:"deId" validate:"required,gt=0"`
	ParaID uint64 `json:"paraId" validate:"required,gt=0"`
}

// UpdateRecadoInput carries the mutable fields only; sender and recipient are
// fixed at creation.
type UpdateRecadoInput struct {
	Texto *string `json:"texto" validate:"omitempty,min=2,max=200"`
	Lido  *bool   `json:"lido"`
}

type RecadoService struct {
	db      *gorm.DB
	pessoas *PessoaService
}

func NewRecadoService(db *gorm.DB, pessoas *PessoaService) *RecadoService {
	return &RecadoService{db: db, pessoas: pessoas}
}

// Create resolves both pessoas before writing anything; if either is absent
// the whole operation fails with ErrPessoaNotFound and no row is persisted.
func (s *RecadoService) Create(ctx context.Context, in CreateRecadoInput) (*model.Recado, error) {
	de, err := s.pessoas.Get(ctx, in.DeID)
	if err != nil {
		return nil, err
	}
	para, err := s.pessoas.Get(ctx, in.ParaID)
	if err != nil {
		return nil, err
	}

	recado := &model.Recado{
		Texto:  in.Texto,
		DeID:   de.ID,
		De:     *de,
		ParaID: para.ID,
		Para:   *para,
		Lido:   false,
		Data:   time.Now(),
	}
	// De/Para are kept on the struct for response shaping; Omit stops GORM
	// from writing the association rows again.
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(recado).Error; err != nil {
		return nil, fmt.Errorf("error creating recado: %w", err)
	}
	return recado, nil
}

func (s *RecadoService) List(ctx context.Context) ([]model.Recado, error) {
	var recados []model.Recado
	err := s.db.WithContext(ctx).
		Preload("De").Preload("Para").
		Order("id ASC").
		Find(&recados).Error
	if err != nil {
		return nil, fmt.Errorf("error listing recados: %w", err)
	}
	return recados, nil
}

func (s *RecadoService) Get(ctx context.Context, id uint64) (*model.Recado, error) {
	var recado model.Recado
	err := s.db.WithContext(ctx).
		Preload("De").Preload("Para").
		First(&recado, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecadoNotFound
		}
		return nil, fmt.Errorf("error finding recado: %w", err)
	}
	return &recado, nil
}

func (s *RecadoService) Update(ctx context.Context, id uint64, in UpdateRecadoInput) (*model.Recado, error) {
	recado, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Texto != nil {
		recado.Texto = *in.Texto
	}
	if in.Lido != nil {
		recado.Lido = *in.Lido
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(recado).Error; err != nil {
		return nil, fmt.Errorf("error updating recado: %w", err)
	}
	return recado, nil
}

// Delete removes the recado only; pessoas are unaffected.
func (s *RecadoService) Delete(ctx context.Context, id uint64) (*model.Recado, error) {
	recado, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(recado).Error; err != nil {
		return nil, fmt.Errorf("error deleting recado %d: %w", id, err)
	}
	return recado, nil
}
