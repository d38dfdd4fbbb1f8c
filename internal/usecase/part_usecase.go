package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPartNotFound     = errors.New("part not found")
	ErrInvalidPartID    = errors.New("invalid part id")
	ErrInvalidPartReq   = errors.New("invalid part data")
	ErrInvalidUnitPrice = errors.New("invalid unit price")
	ErrInvalidStock     = errors.New("invalid stock quantity")
)

// IPartUseCase exposes parts inventory operations. Unit price and stock are
// never negative in the catalog.
type IPartUseCase interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}

type PartUseCase struct {
	repo interfaces.IPartRepository
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

func (u *PartUseCase) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if err := validatePart(&p); err != nil {
		return entities.Part{}, err
	}
	p.ID = uuid.NewString()
	return u.repo.Create(ctx, p)
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *PartUseCase) List(ctx context.Context) ([]entities.Part, error) {
	return u.repo.List(ctx)
}

func (u *PartUseCase) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	if err := validatePart(&p); err != nil {
		return entities.Part{}, err
	}
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return updated, nil
}

func (u *PartUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPartNotFound
	}
	return nil
}

func validatePart(p *entities.Part) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.TrimSpace(p.Code)
	if p.Name == "" || p.Code == "" {
		return ErrInvalidPartReq
	}
	if p.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
