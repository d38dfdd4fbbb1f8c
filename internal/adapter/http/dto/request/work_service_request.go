package request

import (
	"oficina_xpto/internal/domain/entities"
)

type WorkServiceRequest struct {
	Description   string  `json:"description" binding:"required"`
	StandardPrice float64 `json:"standardPrice"`
}

func (r WorkServiceRequest) ToEntity(id string) entities.WorkService {
	return entities.WorkService{
		ID:            id,
		Description:   r.Description,
		StandardPrice: r.StandardPrice,
	}
}
