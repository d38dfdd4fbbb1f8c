package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ServiceItemResponse struct {
	Description string  `json:"description"`
	LaborCost   float64 `json:"laborCost"`
	Quantity    int     `json:"quantity"`
}

type OrderPartResponse struct {
	PartID    string  `json:"partId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type ServiceOrderResponse struct {
	ID           string                `json:"id"`
	CustomerID   string                `json:"customerId"`
	VehicleID    string                `json:"vehicleId"`
	TechnicianID string                `json:"technicianId"`
	Description  string                `json:"description"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
	CompletedAt  *time.Time            `json:"completedAt,omitempty"`
	TotalCost    float64               `json:"totalCost"`
	ServiceItems []ServiceItemResponse `json:"serviceItems"`
	Parts        []OrderPartResponse   `json:"parts"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		VehicleID:    o.VehicleID,
		TechnicianID: o.TechnicianID,
		Description:  o.Description,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
		TotalCost:    o.TotalCost,
		ServiceItems: make([]ServiceItemResponse, 0, len(o.ServiceItems)),
		Parts:        make([]OrderPartResponse, 0, len(o.Parts)),
	}
	for _, s := range o.ServiceItems {
		res.ServiceItems = append(res.ServiceItems, ServiceItemResponse{
			Description: s.Description,
			LaborCost:   s.LaborCost,
			Quantity:    s.Quantity,
		})
	}
	for _, p := range o.Parts {
		res.Parts = append(res.Parts, OrderPartResponse{
			PartID:    p.PartID,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}
	return res
}

func FromServiceOrders(os []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
