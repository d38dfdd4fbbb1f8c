package request

import (
	"oficina_xpto/internal/domain/entities"
)

type VehicleRequest struct {
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	ModelYear    int    `json:"modelYear" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
	CustomerID   string `json:"customerId" binding:"required"`
}

func (r VehicleRequest) ToEntity(id string) entities.Vehicle {
	return entities.Vehicle{
		ID:           id,
		Brand:        r.Brand,
		Model:        r.Model,
		ModelYear:    r.ModelYear,
		LicensePlate: r.LicensePlate,
		CustomerID:   r.CustomerID,
	}
}
