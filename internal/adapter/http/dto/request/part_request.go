package request

import (
	"oficina_xpto/internal/domain/entities"
)

type PartRequest struct {
	Name      string  `json:"name" binding:"required"`
	Code      string  `json:"code" binding:"required"`
	UnitPrice float64 `json:"unitPrice"`
	Stock     int     `json:"stock"`
}

func (r PartRequest) ToEntity(id string) entities.Part {
	return entities.Part{
		ID:        id,
		Name:      r.Name,
		Code:      r.Code,
		UnitPrice: r.UnitPrice,
		Stock:     r.Stock,
	}
}
