package request

import (
	"oficina_xpto/internal/domain/entities"
)

type TechnicianRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Specialization string `json:"specialization"`
}

func (r TechnicianRequest) ToEntity(id string) entities.Technician {
	return entities.Technician{
		ID:             id,
		Name:           r.Name,
		Email:          r.Email,
		Specialization: r.Specialization,
	}
}
