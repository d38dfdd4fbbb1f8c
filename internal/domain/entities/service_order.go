package entities

import (
	"math"
	"time"
)

// ServiceStatus is the lifecycle of a service order.
type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "PENDING"
	ServiceStatusInProgress ServiceStatus = "IN_PROGRESS"
	ServiceStatusCompleted  ServiceStatus = "COMPLETED"
	ServiceStatusCanceled   ServiceStatus = "CANCELED"
)

// ValidServiceStatus reports whether s is a member of the status enum.
func ValidServiceStatus(s ServiceStatus) bool {
	switch s {
	case ServiceStatusPending, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusCanceled:
		return true
	}
	return false
}

// ServiceItem is one labor line inside a service order. It has no identity
// of its own beyond its position in the order's item list.
type ServiceItem struct {
	Description string  `json:"description"`
	LaborCost   float64 `json:"laborCost"`
	Quantity    int     `json:"quantity"`
}

// ServiceOrderPart is one material line inside a service order.
//
// UnitPrice is a snapshot of the part's catalog price taken when the line was
// priced; it does not follow later catalog updates.
type ServiceOrderPart struct {
	PartID    string  `json:"partId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// ServiceOrder is the aggregate tying a customer, vehicle, technician, labor
// lines and part lines into one billable unit.
//
// Invariant: TotalCost is always recomputable from the two line lists and is
// never mutated independently of them.
type ServiceOrder struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customerId"`
	VehicleID    string             `json:"vehicleId"`
	TechnicianID string             `json:"technicianId"`
	Description  string             `json:"description"`
	Status       ServiceStatus      `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
	TotalCost    float64            `json:"totalCost"`
	ServiceItems []ServiceItem      `json:"serviceItems"`
	Parts        []ServiceOrderPart `json:"parts"`
}

// CalculateTotalCost derives the order total from its line items. Malformed
// numeric values count as zero so the total is always a finite number.
func (o ServiceOrder) CalculateTotalCost() float64 {
	total := 0.0
	for _, item := range o.ServiceItems {
		total += finite(item.LaborCost) * float64(item.Quantity)
	}
	for _, part := range o.Parts {
		total += finite(part.UnitPrice) * float64(part.Quantity)
	}
	return total
}

// UpdateTotalCost recomputes and stores the derived total.
func (o *ServiceOrder) UpdateTotalCost() {
	o.TotalCost = o.CalculateTotalCost()
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
