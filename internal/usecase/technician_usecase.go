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
	ErrTechnicianNotFound   = errors.New("technician not found")
	ErrInvalidTechnicianID  = errors.New("invalid technician id")
	ErrInvalidTechnicianReq = errors.New("invalid technician data")
)

// ITechnicianUseCase exposes technician registry operations.
type ITechnicianUseCase interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
	Update(ctx context.Context, t entities.Technician) (entities.Technician, error)
	Delete(ctx context.Context, id string) error
}

type TechnicianUseCase struct {
	repo interfaces.ITechnicianRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo}
}

func (u *TechnicianUseCase) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return entities.Technician{}, ErrInvalidTechnicianReq
	}
	t.ID = uuid.NewString()
	return u.repo.Create(ctx, t)
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if t.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

func (u *TechnicianUseCase) List(ctx context.Context) ([]entities.Technician, error) {
	return u.repo.List(ctx)
}

func (u *TechnicianUseCase) Update(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return entities.Technician{}, ErrInvalidTechnicianReq
	}
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Technician{}, err
	}
	if updated.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return updated, nil
}

func (u *TechnicianUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTechnicianID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTechnicianNotFound
	}
	return nil
}
