package composer

import (
	"errors"
	"reflect"
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func testRefs() ReferenceData {
	return ReferenceData{
		Customers: []entities.Customer{
			{ID: "c1", Name: "Alice"},
			{ID: "c2", Name: "Bob"},
		},
		Vehicles: []entities.Vehicle{
			{ID: "v1", Brand: "Toyota", Model: "Corolla", LicensePlate: "ABC-1234", CustomerID: "c1"},
			{ID: "v2", Brand: "Honda", Model: "Civic", LicensePlate: "DEF-5678", CustomerID: "c2"},
		},
		Technicians: []entities.Technician{
			{ID: "t1", Name: "Mia", Specialization: "engine"},
		},
		Parts: []entities.Part{
			{ID: "p1", Name: "Oil filter", Code: "OF-01", UnitPrice: 25.5, Stock: 10},
			{ID: "p2", Name: "Brake pad", Code: "BP-02", UnitPrice: 80, Stock: 4},
		},
		WorkServices: []entities.WorkService{
			{ID: "w1", Description: "Oil change", StandardPrice: 120},
			{ID: "w2", Description: "Brake inspection", StandardPrice: 90},
		},
	}
}

func TestComputeTotal(t *testing.T) {
	t.Run("labor and parts", func(t *testing.T) {
		c := New(testRefs())
		c.AddLaborItem()
		c.UpdateLaborItem(0, FieldLaborCost, "100")
		c.UpdateLaborItem(0, FieldQuantity, "2")
		c.AddPartItem()
		c.UpdatePartItem(0, FieldUnitPrice, "50")
		c.UpdatePartItem(0, FieldQuantity, "1")

		if got := c.ComputeTotal(); got != 250 {
			t.Fatalf("expected 250, got %v", got)
		}
	})

	t.Run("malformed input counts as zero", func(t *testing.T) {
		c := New(testRefs())
		c.AddLaborItem()
		c.UpdateLaborItem(0, FieldLaborCost, "not-a-number")
		c.UpdateLaborItem(0, FieldQuantity, "2")
		c.AddLaborItem()
		c.UpdateLaborItem(1, FieldLaborCost, "")
		c.AddPartItem()
		c.UpdatePartItem(0, FieldUnitPrice, "NaN")
		c.UpdatePartItem(0, FieldQuantity, "3")

		got := c.ComputeTotal()
		if got != got { // NaN check
			t.Fatalf("total must never be NaN")
		}
		if got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("empty composer", func(t *testing.T) {
		c := New(testRefs())
		if got := c.ComputeTotal(); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestInitializeIdempotent(t *testing.T) {
	draft := &OrderDraft{
		CustomerID:   "c1",
		VehicleID:    "v1",
		TechnicianID: "t1",
		Description:  "noisy brakes",
		Status:       entities.ServiceStatusInProgress,
		ServiceItems: []entities.ServiceItem{
			{Description: "Brake inspection", LaborCost: 90}, // quantity absent
		},
		Parts: []entities.ServiceOrderPart{
			{PartID: "p2", UnitPrice: 80}, // quantity absent
		},
	}

	c := New(testRefs())
	c.Initialize(draft)
	first := snapshot(c)
	c.Initialize(draft)
	second := snapshot(c)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("initialize not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.Labor[0].Quantity != 1 || first.Parts[0].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %+v", first)
	}
	if first.Header.Status != entities.ServiceStatusInProgress {
		t.Fatalf("expected hydrated status, got %s", first.Header.Status)
	}
}

func TestInitializeDefaults(t *testing.T) {
	c := New(testRefs())
	c.Initialize(&OrderDraft{})
	h := c.Header()
	if h.Status != entities.ServiceStatusPending {
		t.Fatalf("expected PENDING default, got %s", h.Status)
	}
	if h.CustomerID != "" || h.VehicleID != "" || h.TechnicianID != "" {
		t.Fatalf("expected empty header ids, got %+v", h)
	}
	if len(c.LaborItems()) != 0 || len(c.PartItems()) != 0 {
		t.Fatalf("expected empty line lists")
	}
}

func TestSetCustomerDerivesVehicles(t *testing.T) {
	c := New(testRefs())
	c.SetCustomer("c1")
	got := c.SelectableVehicles()
	if len(got) != 1 || got[0].ID != "v1" {
		t.Fatalf("expected [v1], got %+v", got)
	}

	// Changing the customer does not clear the now-stale vehicle selection.
	c.SetVehicle("v1")
	c.SetCustomer("c2")
	if c.Header().VehicleID != "v1" {
		t.Fatalf("vehicle selection must survive customer change until submit")
	}

	c.SetCustomer("")
	if len(c.SelectableVehicles()) != 0 {
		t.Fatalf("expected empty vehicle set for unset customer")
	}
}

func TestApplyVehiclesDiscardsSupersededFetch(t *testing.T) {
	c := New(testRefs())
	stale := c.SetCustomer("c1")
	c.SetCustomer("c2")

	applied := c.ApplyVehicles(stale, []entities.Vehicle{
		{ID: "v9", CustomerID: "c1"},
	})
	if applied {
		t.Fatalf("superseded fetch must be discarded")
	}
	got := c.SelectableVehicles()
	if len(got) != 1 || got[0].ID != "v2" {
		t.Fatalf("expected current customer's vehicles, got %+v", got)
	}
}

func TestSelectLaborCatalogEntry(t *testing.T) {
	t.Run("catalog match copies description and price", func(t *testing.T) {
		c := New(testRefs())
		c.AddLaborItem()
		c.SelectLaborCatalogEntry(0, "Oil change")
		items := c.LaborItems()
		if items[0].Description != "Oil change" || items[0].LaborCost != 120 {
			t.Fatalf("unexpected item: %+v", items[0])
		}
	})

	t.Run("custom sentinel clears the line", func(t *testing.T) {
		c := New(testRefs())
		c.AddLaborItem()
		c.SelectLaborCatalogEntry(0, "Oil change")
		c.SelectLaborCatalogEntry(0, CustomCatalogEntry)
		items := c.LaborItems()
		if items[0].Description != "" || items[0].LaborCost != 0 {
			t.Fatalf("expected cleared line, got %+v", items[0])
		}
	})

	t.Run("unknown description is a no-op", func(t *testing.T) {
		c := New(testRefs())
		c.AddLaborItem()
		c.UpdateLaborItem(0, FieldDescription, "keep me")
		c.SelectLaborCatalogEntry(0, "No such service")
		if c.LaborItems()[0].Description != "keep me" {
			t.Fatalf("unexpected mutation on unknown catalog entry")
		}
	})
}

func TestUpdatePartItemSnapshotsUnitPrice(t *testing.T) {
	refs := testRefs()
	c := New(refs)
	c.AddPartItem()
	c.UpdatePartItem(0, FieldPartID, "p1")
	if got := c.PartItems()[0].UnitPrice; got != 25.5 {
		t.Fatalf("expected snapshot 25.5, got %v", got)
	}

	// A later catalog price change does not retroactively reprice the line.
	refs.Parts[0].UnitPrice = 99
	if got := c.PartItems()[0].UnitPrice; got != 25.5 {
		t.Fatalf("line unit price must be a snapshot, got %v", got)
	}
}

func TestRemoveShiftsIndices(t *testing.T) {
	c := New(testRefs())
	for i, desc := range []string{"a", "b", "c"} {
		c.AddLaborItem()
		c.UpdateLaborItem(i, FieldDescription, desc)
	}
	c.RemoveLaborItem(1)

	items := c.LaborItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "a" || items[1].Description != "c" {
		t.Fatalf("expected [a c], got %+v", items)
	}

	// Out-of-range removals leave state untouched.
	c.RemoveLaborItem(5)
	c.RemoveLaborItem(-1)
	if len(c.LaborItems()) != 2 {
		t.Fatalf("out-of-range removal must be a no-op")
	}
}

func TestBuildSubmissionPayload(t *testing.T) {
	t.Run("missing associations", func(t *testing.T) {
		c := New(testRefs())
		_, err := c.BuildSubmissionPayload()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, key := range []string{ErrorKeyCustomer, ErrorKeyVehicle, ErrorKeyTechnician} {
			if _, ok := verr.Fields[key]; !ok {
				t.Fatalf("expected error for %s, got %+v", key, verr.Fields)
			}
		}
	})

	t.Run("vehicle of another customer", func(t *testing.T) {
		c := New(testRefs())
		c.SetCustomer("c1")
		c.SetVehicle("v2") // belongs to c2
		c.SetTechnician("t1")

		_, err := c.BuildSubmissionPayload()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := verr.Fields[ErrorKeyOrder]; !ok {
			t.Fatalf("expected cross-entity error, got %+v", verr.Fields)
		}
	})

	t.Run("stale vehicle caught at submit", func(t *testing.T) {
		c := New(testRefs())
		c.SetCustomer("c1")
		c.SetVehicle("v1")
		c.SetCustomer("c2") // v1 is now stale but not cleared
		c.SetTechnician("t1")

		_, err := c.BuildSubmissionPayload()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("end to end", func(t *testing.T) {
		c := New(testRefs())
		c.SetCustomer("c1")
		c.SetVehicle("v1")
		c.SetTechnician("t1")
		c.AddLaborItem()
		c.UpdateLaborItem(0, FieldLaborCost, "80")
		c.UpdateLaborItem(0, FieldQuantity, "1")

		sub, err := c.BuildSubmissionPayload()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.TotalCost != 80 {
			t.Fatalf("expected totalCost 80, got %v", sub.TotalCost)
		}
		if sub.CustomerID != "c1" || sub.VehicleID != "v1" || sub.TechnicianID != "t1" {
			t.Fatalf("unexpected header: %+v", sub)
		}
		if sub.Status != entities.ServiceStatusPending {
			t.Fatalf("expected PENDING, got %s", sub.Status)
		}
	})

	t.Run("parts projected to partId and quantity", func(t *testing.T) {
		c := New(testRefs())
		c.SetCustomer("c1")
		c.SetVehicle("v1")
		c.SetTechnician("t1")
		c.AddPartItem()
		c.UpdatePartItem(0, FieldPartID, "p2")
		c.UpdatePartItem(0, FieldQuantity, "2")

		sub, err := c.BuildSubmissionPayload()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []SubmissionPart{{PartID: "p2", Quantity: 2}}
		if !reflect.DeepEqual(sub.Parts, want) {
			t.Fatalf("expected %+v, got %+v", want, sub.Parts)
		}
		// The snapshot price feeds the total but is not transported.
		if sub.TotalCost != 160 {
			t.Fatalf("expected totalCost 160, got %v", sub.TotalCost)
		}
	})

	t.Run("does not mutate composer state", func(t *testing.T) {
		c := New(testRefs())
		c.SetCustomer("c1")
		c.SetVehicle("v1")
		c.SetTechnician("t1")
		c.AddLaborItem()
		before := snapshot(c)
		if _, err := c.BuildSubmissionPayload(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(before, snapshot(c)) {
			t.Fatalf("BuildSubmissionPayload mutated composer state")
		}
	})
}

type composerState struct {
	Header   Header
	Labor    []entities.ServiceItem
	Parts    []entities.ServiceOrderPart
	Vehicles []entities.Vehicle
}

func snapshot(c *Composer) composerState {
	return composerState{
		Header:   c.Header(),
		Labor:    c.LaborItems(),
		Parts:    c.PartItems(),
		Vehicles: c.SelectableVehicles(),
	}
}
