package response

import (
	"testing"
	"time"

	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	done := now.Add(time.Hour)
	o := entities.ServiceOrder{
		ID:           "os-1",
		CustomerID:   "c1",
		VehicleID:    "v1",
		TechnicianID: "t1",
		Status:       entities.ServiceStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  &done,
		TotalCost:    199.5,
		ServiceItems: []entities.ServiceItem{{Description: "Oil change", LaborCost: 120, Quantity: 1}},
		Parts:        []entities.ServiceOrderPart{{PartID: "p1", Quantity: 2, UnitPrice: 39.75}},
	}

	res := FromServiceOrder(o)
	if res.ID != "os-1" || res.Status != "COMPLETED" || res.TotalCost != 199.5 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.CompletedAt == nil || !res.CompletedAt.Equal(done) {
		t.Fatalf("unexpected completedAt: %v", res.CompletedAt)
	}
	if len(res.ServiceItems) != 1 || res.ServiceItems[0].LaborCost != 120 {
		t.Fatalf("unexpected service items: %+v", res.ServiceItems)
	}
	if len(res.Parts) != 1 || res.Parts[0].UnitPrice != 39.75 {
		t.Fatalf("unexpected parts: %+v", res.Parts)
	}
}

func TestFromEstimateResult(t *testing.T) {
	ok := usecase.EstimateResult{
		Submission: composer.Submission{CustomerID: "c1", TotalCost: 80},
		LoadErrors: []*composer.ReferenceDataLoadError{{List: "technicians"}},
	}
	res := FromEstimateResult(ok)
	if !res.Valid || res.Payload == nil || res.Payload.TotalCost != 80 {
		t.Fatalf("expected valid payload, got %+v", res)
	}
	if len(res.Warnings) != 1 || res.Warnings[0] != "failed to load technicians" {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}

	bad := usecase.EstimateResult{FieldErrors: map[string]string{"customerId": "customer is required"}}
	res = FromEstimateResult(bad)
	if res.Valid || res.Payload != nil {
		t.Fatalf("expected invalid result, got %+v", res)
	}
	if res.Errors["customerId"] == "" {
		t.Fatalf("expected customer error, got %v", res.Errors)
	}
}
