package entities

import (
	"math"
	"testing"
)

func TestServiceOrderCalculateTotalCost(t *testing.T) {
	o := ServiceOrder{
		ServiceItems: []ServiceItem{
			{Description: "alignment", LaborCost: 100, Quantity: 2},
			{Description: "noop", LaborCost: 50, Quantity: 0},
		},
		Parts: []ServiceOrderPart{
			{PartID: "p1", Quantity: 1, UnitPrice: 50},
		},
	}
	if got := o.CalculateTotalCost(); got != 250 {
		t.Fatalf("expected 250, got %v", got)
	}

	o.UpdateTotalCost()
	if o.TotalCost != 250 {
		t.Fatalf("expected stored total 250, got %v", o.TotalCost)
	}
}

func TestServiceOrderTotalNeverNaN(t *testing.T) {
	o := ServiceOrder{
		ServiceItems: []ServiceItem{{LaborCost: math.NaN(), Quantity: 3}},
		Parts:        []ServiceOrderPart{{UnitPrice: math.Inf(1), Quantity: 1}},
	}
	got := o.CalculateTotalCost()
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("total must be finite, got %v", got)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestValidServiceStatus(t *testing.T) {
	for _, s := range []ServiceStatus{ServiceStatusPending, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusCanceled} {
		if !ValidServiceStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidServiceStatus("DONE") {
		t.Fatalf("expected DONE to be invalid")
	}
}
