package request

import (
	"encoding/json"
	"errors"
	"strings"

	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

var ErrInvalidStatusPayload = errors.New("invalid status payload")

type ServiceItemRequest struct {
	Description string  `json:"description"`
	LaborCost   float64 `json:"laborCost"`
	Quantity    int     `json:"quantity"`
}

// OrderPartRequest carries only the part reference and quantity. Unit
// prices are resolved server-side from the catalog.
type OrderPartRequest struct {
	PartID   string `json:"partId" binding:"required"`
	Quantity int    `json:"quantity"`
}

type ServiceOrderRequest struct {
	CustomerID   string               `json:"customerId" binding:"required"`
	VehicleID    string               `json:"vehicleId" binding:"required"`
	TechnicianID string               `json:"technicianId" binding:"required"`
	Description  string               `json:"description"`
	Status       string               `json:"status"`
	ServiceItems []ServiceItemRequest `json:"serviceItems"`
	Parts        []OrderPartRequest   `json:"parts"`
}

func (r ServiceOrderRequest) ToInput() usecase.OrderInput {
	in := usecase.OrderInput{
		CustomerID:   r.CustomerID,
		VehicleID:    r.VehicleID,
		TechnicianID: r.TechnicianID,
		Description:  r.Description,
		Status:       entities.ServiceStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
	for _, s := range r.ServiceItems {
		in.ServiceItems = append(in.ServiceItems, entities.ServiceItem{
			Description: s.Description,
			LaborCost:   s.LaborCost,
			Quantity:    s.Quantity,
		})
	}
	for _, p := range r.Parts {
		in.Parts = append(in.Parts, usecase.OrderPartInput{
			PartID:   p.PartID,
			Quantity: p.Quantity,
		})
	}
	return in
}

// EstimateRequest is a dry-run composition payload. Associations may be
// missing or inconsistent; the composer reports those as field errors
// instead of rejecting the request outright, so nothing here is required.
type EstimateRequest struct {
	CustomerID   string               `json:"customerId"`
	VehicleID    string               `json:"vehicleId"`
	TechnicianID string               `json:"technicianId"`
	Description  string               `json:"description"`
	Status       string               `json:"status"`
	ServiceItems []ServiceItemRequest `json:"serviceItems"`
	Parts        []OrderPartRequest   `json:"parts"`
}

func (r EstimateRequest) ToDraft() composer.OrderDraft {
	d := composer.OrderDraft{
		CustomerID:   strings.TrimSpace(r.CustomerID),
		VehicleID:    strings.TrimSpace(r.VehicleID),
		TechnicianID: strings.TrimSpace(r.TechnicianID),
		Description:  r.Description,
		Status:       entities.ServiceStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
	for _, s := range r.ServiceItems {
		d.ServiceItems = append(d.ServiceItems, entities.ServiceItem{
			Description: s.Description,
			LaborCost:   s.LaborCost,
			Quantity:    s.Quantity,
		})
	}
	for _, p := range r.Parts {
		d.Parts = append(d.Parts, entities.ServiceOrderPart{
			PartID:   strings.TrimSpace(p.PartID),
			Quantity: p.Quantity,
		})
	}
	return d
}

// OrderStatusRequest accepts either a bare JSON string ("COMPLETED") or an
// object ({"status": "COMPLETED"}). The bare form matches what older
// clients send.
type OrderStatusRequest struct {
	Status string
}

func (r *OrderStatusRequest) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		r.Status = bare
		return nil
	}
	var obj struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return ErrInvalidStatusPayload
	}
	r.Status = obj.Status
	return nil
}

func (r OrderStatusRequest) ResolveStatus() entities.ServiceStatus {
	return entities.ServiceStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
