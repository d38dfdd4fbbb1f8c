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
	ErrWorkServiceNotFound   = errors.New("work service not found")
	ErrInvalidWorkServiceID  = errors.New("invalid work service id")
	ErrInvalidWorkServiceReq = errors.New("invalid work service data")
)

// IWorkServiceUseCase exposes labor catalog operations. Catalog entries
// pre-fill order labor lines; they never constrain them.
type IWorkServiceUseCase interface {
	Create(ctx context.Context, w entities.WorkService) (entities.WorkService, error)
	GetByID(ctx context.Context, id string) (entities.WorkService, error)
	List(ctx context.Context) ([]entities.WorkService, error)
	Update(ctx context.Context, w entities.WorkService) (entities.WorkService, error)
	Delete(ctx context.Context, id string) error
}

type WorkServiceUseCase struct {
	repo interfaces.IWorkServiceRepository
}

var _ IWorkServiceUseCase = (*WorkServiceUseCase)(nil)

func NewWorkServiceUseCase(repo interfaces.IWorkServiceRepository) *WorkServiceUseCase {
	return &WorkServiceUseCase{repo: repo}
}

func (u *WorkServiceUseCase) Create(ctx context.Context, w entities.WorkService) (entities.WorkService, error) {
	w.Description = strings.TrimSpace(w.Description)
	if w.Description == "" || w.StandardPrice < 0 {
		return entities.WorkService{}, ErrInvalidWorkServiceReq
	}
	w.ID = uuid.NewString()
	return u.repo.Create(ctx, w)
}

func (u *WorkServiceUseCase) GetByID(ctx context.Context, id string) (entities.WorkService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkService{}, ErrInvalidWorkServiceID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkService{}, err
	}
	if w.ID == "" {
		return entities.WorkService{}, ErrWorkServiceNotFound
	}
	return w, nil
}

func (u *WorkServiceUseCase) List(ctx context.Context) ([]entities.WorkService, error) {
	return u.repo.List(ctx)
}

func (u *WorkServiceUseCase) Update(ctx context.Context, w entities.WorkService) (entities.WorkService, error) {
	w.ID = strings.TrimSpace(w.ID)
	if w.ID == "" {
		return entities.WorkService{}, ErrInvalidWorkServiceID
	}
	w.Description = strings.TrimSpace(w.Description)
	if w.Description == "" || w.StandardPrice < 0 {
		return entities.WorkService{}, ErrInvalidWorkServiceReq
	}
	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.WorkService{}, err
	}
	if updated.ID == "" {
		return entities.WorkService{}, ErrWorkServiceNotFound
	}
	return updated, nil
}

func (u *WorkServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkServiceID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWorkServiceNotFound
	}
	return nil
}
