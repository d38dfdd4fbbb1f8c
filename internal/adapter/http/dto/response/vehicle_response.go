package response

import (
	"fmt"

	"oficina_xpto/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	ModelYear    int    `json:"modelYear"`
	LicensePlate string `json:"licensePlate"`
	CustomerID   string `json:"customerId"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		ModelYear:    v.ModelYear,
		LicensePlate: v.LicensePlate,
		CustomerID:   v.CustomerID,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}

func VehicleOptions(vs []entities.Vehicle) []SelectOption {
	out := make([]SelectOption, 0, len(vs))
	for _, v := range vs {
		out = append(out, SelectOption{
			ID:    v.ID,
			Label: fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.LicensePlate),
		})
	}
	return out
}
