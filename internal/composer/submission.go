package composer

import (
	"fmt"
	"strings"

	"oficina_xpto/internal/domain/entities"
)

// ValidationError field keys. ErrorKeyOrder carries cross-entity consistency
// failures that do not belong to a single field.
const (
	ErrorKeyCustomer   = "customerId"
	ErrorKeyVehicle    = "vehicleId"
	ErrorKeyTechnician = "technicianId"
	ErrorKeyOrder      = "order"
)

// ValidationError blocks submission. It is keyed by field so callers can
// render inline messages; it never aborts the composer itself.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, k := range sortedFieldKeys(e.Fields) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "order validation failed: " + strings.Join(parts, "; ")
}

// SubmissionPart is the persisted projection of a part line. The display
// unit price is dropped: pricing authority belongs to the persistence side.
type SubmissionPart struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

// Submission is the normalized outbound order payload. It is a detached
// snapshot; mutating the composer afterwards does not touch it.
type Submission struct {
	CustomerID   string                 `json:"customerId"`
	VehicleID    string                 `json:"vehicleId"`
	TechnicianID string                 `json:"technicianId"`
	Description  string                 `json:"description"`
	Status       entities.ServiceStatus `json:"status"`
	TotalCost    float64                `json:"totalCost"`
	ServiceItems []entities.ServiceItem `json:"serviceItems"`
	Parts        []SubmissionPart       `json:"parts"`
}

// BuildSubmissionPayload validates the composed order and produces the
// payload handed to the persistence collaborator. It is the single point
// where the vehicle/customer cross-check runs, closing the stale-selection
// gap left open by SetCustomer. Composer state is never mutated.
func (c *Composer) BuildSubmissionPayload() (Submission, error) {
	fields := map[string]string{}
	if c.header.CustomerID == "" {
		fields[ErrorKeyCustomer] = "customer is required"
	}
	if c.header.VehicleID == "" {
		fields[ErrorKeyVehicle] = "vehicle is required"
	}
	if c.header.TechnicianID == "" {
		fields[ErrorKeyTechnician] = "technician is required"
	}

	if c.header.CustomerID != "" && c.header.VehicleID != "" {
		if owner, ok := vehicleOwner(c.refs.Vehicles, c.header.VehicleID); !ok || owner != c.header.CustomerID {
			fields[ErrorKeyOrder] = "selected vehicle does not belong to the selected customer"
		}
	}

	if len(fields) > 0 {
		return Submission{}, &ValidationError{Fields: fields}
	}

	parts := make([]SubmissionPart, 0, len(c.partItems))
	for _, p := range c.partItems {
		parts = append(parts, SubmissionPart{PartID: p.PartID, Quantity: p.Quantity})
	}

	return Submission{
		CustomerID:   c.header.CustomerID,
		VehicleID:    c.header.VehicleID,
		TechnicianID: c.header.TechnicianID,
		Description:  c.header.Description,
		Status:       c.header.Status,
		TotalCost:    c.ComputeTotal(),
		ServiceItems: append([]entities.ServiceItem(nil), c.laborItems...),
		Parts:        parts,
	}, nil
}

func vehicleOwner(vehicles []entities.Vehicle, vehicleID string) (string, bool) {
	for _, v := range vehicles {
		if v.ID == vehicleID {
			return v.CustomerID, true
		}
	}
	return "", false
}
