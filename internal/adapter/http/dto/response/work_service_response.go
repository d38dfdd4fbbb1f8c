package response

import (
	"oficina_xpto/internal/domain/entities"
)

type WorkServiceResponse struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	StandardPrice float64 `json:"standardPrice"`
}

func FromWorkService(w entities.WorkService) WorkServiceResponse {
	return WorkServiceResponse{
		ID:            w.ID,
		Description:   w.Description,
		StandardPrice: w.StandardPrice,
	}
}

func FromWorkServices(ws []entities.WorkService) []WorkServiceResponse {
	out := make([]WorkServiceResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWorkService(w))
	}
	return out
}
