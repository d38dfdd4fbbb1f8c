package response

import (
	"oficina_xpto/internal/domain/entities"
)

type TechnicianResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:             t.ID,
		Name:           t.Name,
		Email:          t.Email,
		Specialization: t.Specialization,
	}
}

func FromTechnicians(ts []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTechnician(t))
	}
	return out
}
