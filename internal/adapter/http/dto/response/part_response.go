package response

import (
	"oficina_xpto/internal/domain/entities"
)

type PartResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	UnitPrice float64 `json:"unitPrice"`
	Stock     int     `json:"stock"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		UnitPrice: p.UnitPrice,
		Stock:     p.Stock,
	}
}

func FromParts(ps []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPart(p))
	}
	return out
}
