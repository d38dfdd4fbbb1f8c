// Package composer holds the in-progress state of a service order while it
// is being assembled from reference data, and turns it into a validated,
// normalized submission.
//
// A Composer is owned by a single session and mutated only through its own
// methods; no operation here performs I/O. Reference-data loading lives in
// Session (session.go).
package composer

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"oficina_xpto/internal/domain/entities"
)

// CustomCatalogEntry is the sentinel selection meaning "free-form labor line,
// not backed by a catalog entry".
const CustomCatalogEntry = "custom"

// Labor and part line fields accepted by UpdateLaborItem / UpdatePartItem.
const (
	FieldDescription = "description"
	FieldLaborCost   = "laborCost"
	FieldQuantity    = "quantity"
	FieldPartID      = "partId"
	FieldUnitPrice   = "unitPrice"
)

// Header mirrors the order form's top section.
type Header struct {
	CustomerID   string
	VehicleID    string
	TechnicianID string
	Description  string
	Status       entities.ServiceStatus
}

// OrderDraft hydrates a composer from a previously persisted order (edit
// flow) or from a client-sent draft (estimate flow).
type OrderDraft struct {
	CustomerID   string
	VehicleID    string
	TechnicianID string
	Description  string
	Status       entities.ServiceStatus
	ServiceItems []entities.ServiceItem
	Parts        []entities.ServiceOrderPart
}

// ReferenceData is the read-only snapshot the composer selects from. It is
// loaded once per session; only the vehicle set is re-derived as the customer
// selection changes.
type ReferenceData struct {
	Customers    []entities.Customer
	Vehicles     []entities.Vehicle
	Technicians  []entities.Technician
	Parts        []entities.Part
	WorkServices []entities.WorkService
}

// Composer owns one in-progress order.
type Composer struct {
	header     Header
	laborItems []entities.ServiceItem
	partItems  []entities.ServiceOrderPart

	refs     ReferenceData
	vehicles []entities.Vehicle
	// vehicleGen stamps vehicle fetches so a load resolved for a superseded
	// customer selection is discarded, never applied.
	vehicleGen uint64
}

func New(refs ReferenceData) *Composer {
	c := &Composer{refs: refs}
	c.Initialize(nil)
	return c
}

// Initialize resets all composer state. With a nil draft it yields an empty
// PENDING order; with a draft it copies the header and rebuilds both line
// lists, applying the same defaults either way. Calling it twice with the
// same argument yields identical state.
func (c *Composer) Initialize(existing *OrderDraft) {
	c.header = Header{Status: entities.ServiceStatusPending}
	c.laborItems = nil
	c.partItems = nil
	c.vehicles = nil
	c.vehicleGen++

	if existing == nil {
		return
	}

	c.header.VehicleID = existing.VehicleID
	c.header.TechnicianID = existing.TechnicianID
	c.header.Description = existing.Description
	if existing.Status != "" {
		c.header.Status = existing.Status
	}

	for _, item := range existing.ServiceItems {
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		item.LaborCost = finite(item.LaborCost)
		c.laborItems = append(c.laborItems, item)
	}
	for _, part := range existing.Parts {
		if part.Quantity == 0 {
			part.Quantity = 1
		}
		part.UnitPrice = finite(part.UnitPrice)
		c.partItems = append(c.partItems, part)
	}

	c.SetCustomer(existing.CustomerID)
}

// SetCustomer updates the header and re-derives the selectable vehicle set
// from the loaded snapshot. A previously selected vehicle that falls outside
// the new set is deliberately not cleared here; the mismatch is caught at the
// submission boundary instead, so user input is never silently discarded.
//
// The returned VehicleFetch lets the caller refresh the vehicle list
// asynchronously; see ApplyVehicles.
func (c *Composer) SetCustomer(customerID string) VehicleFetch {
	c.header.CustomerID = customerID
	c.vehicleGen++
	c.vehicles = nil
	if customerID != "" {
		c.vehicles = vehiclesForCustomer(c.refs.Vehicles, customerID)
	}
	return VehicleFetch{CustomerID: customerID, gen: c.vehicleGen}
}

// VehicleFetch identifies one in-flight vehicle list load. It is stamped with
// the customer selection generation it was issued for.
type VehicleFetch struct {
	CustomerID string
	gen        uint64
}

// ApplyVehicles installs a freshly fetched vehicle list, filtered to the
// fetch's customer. It reports false, leaving state untouched, when the
// customer selection changed after the fetch was issued.
func (c *Composer) ApplyVehicles(f VehicleFetch, vehicles []entities.Vehicle) bool {
	if f.gen != c.vehicleGen || f.CustomerID != c.header.CustomerID {
		return false
	}
	if f.CustomerID == "" {
		c.vehicles = nil
		return true
	}
	c.refs.Vehicles = vehicles
	c.vehicles = vehiclesForCustomer(vehicles, f.CustomerID)
	return true
}

func (c *Composer) SetVehicle(vehicleID string)       { c.header.VehicleID = vehicleID }
func (c *Composer) SetTechnician(technicianID string) { c.header.TechnicianID = technicianID }
func (c *Composer) SetDescription(description string) { c.header.Description = description }

func (c *Composer) SetStatus(status entities.ServiceStatus) {
	if entities.ValidServiceStatus(status) {
		c.header.Status = status
	}
}

// AddLaborItem appends an empty labor line.
func (c *Composer) AddLaborItem() {
	c.laborItems = append(c.laborItems, entities.ServiceItem{Quantity: 1})
}

// SelectLaborCatalogEntry fills the labor line at index from the work-service
// catalog. The CustomCatalogEntry sentinel clears the line for free-form
// input. Catalog entries are matched by exact description; labor lines carry
// no catalog id, so the description doubles as the lookup key to keep the
// persisted payload shape unchanged.
func (c *Composer) SelectLaborCatalogEntry(index int, value string) {
	if index < 0 || index >= len(c.laborItems) {
		return
	}
	if value == CustomCatalogEntry {
		c.laborItems[index].Description = ""
		c.laborItems[index].LaborCost = 0
		return
	}
	for _, ws := range c.refs.WorkServices {
		if ws.Description == value {
			c.laborItems[index].Description = ws.Description
			c.laborItems[index].LaborCost = ws.StandardPrice
			return
		}
	}
}

// UpdateLaborItem sets one field of the labor line at index. Numeric fields
// follow the default-to-zero policy: malformed or empty input is stored as 0,
// never propagated. A zero quantity is allowed in working state; it only
// zeroes the line's contribution to the total.
func (c *Composer) UpdateLaborItem(index int, field, value string) {
	if index < 0 || index >= len(c.laborItems) {
		return
	}
	switch field {
	case FieldDescription:
		c.laborItems[index].Description = value
	case FieldLaborCost:
		c.laborItems[index].LaborCost = coerceFloat(value)
	case FieldQuantity:
		c.laborItems[index].Quantity = coerceInt(value)
	}
}

// RemoveLaborItem drops the line at index; later lines shift down by one.
func (c *Composer) RemoveLaborItem(index int) {
	if index < 0 || index >= len(c.laborItems) {
		return
	}
	c.laborItems = append(c.laborItems[:index], c.laborItems[index+1:]...)
}

// AddPartItem appends an empty part line.
func (c *Composer) AddPartItem() {
	c.partItems = append(c.partItems, entities.ServiceOrderPart{Quantity: 1})
}

// UpdatePartItem sets one field of the part line at index. Selecting a part
// snapshots its current catalog price into the line's display unit price;
// later catalog changes do not touch lines already priced.
func (c *Composer) UpdatePartItem(index int, field, value string) {
	if index < 0 || index >= len(c.partItems) {
		return
	}
	switch field {
	case FieldPartID:
		c.partItems[index].PartID = value
		for _, p := range c.refs.Parts {
			if p.ID == value {
				c.partItems[index].UnitPrice = p.UnitPrice
				break
			}
		}
	case FieldQuantity:
		c.partItems[index].Quantity = coerceInt(value)
	case FieldUnitPrice:
		c.partItems[index].UnitPrice = coerceFloat(value)
	}
}

func (c *Composer) RemovePartItem(index int) {
	if index < 0 || index >= len(c.partItems) {
		return
	}
	c.partItems = append(c.partItems[:index], c.partItems[index+1:]...)
}

// ComputeTotal derives the estimated total from the current line lists. It
// has no side effects, cannot fail, and always returns a finite number no
// matter how malformed the intermediate state is.
func (c *Composer) ComputeTotal() float64 {
	total := 0.0
	for _, item := range c.laborItems {
		total += finite(item.LaborCost) * float64(item.Quantity)
	}
	for _, part := range c.partItems {
		total += finite(part.UnitPrice) * float64(part.Quantity)
	}
	return total
}

// Header returns a copy of the current header.
func (c *Composer) Header() Header { return c.header }

// LaborItems returns a copy of the labor lines.
func (c *Composer) LaborItems() []entities.ServiceItem {
	return append([]entities.ServiceItem(nil), c.laborItems...)
}

// PartItems returns a copy of the part lines.
func (c *Composer) PartItems() []entities.ServiceOrderPart {
	return append([]entities.ServiceOrderPart(nil), c.partItems...)
}

// SelectableVehicles returns the vehicles offered for the current customer.
func (c *Composer) SelectableVehicles() []entities.Vehicle {
	return append([]entities.Vehicle(nil), c.vehicles...)
}

func vehiclesForCustomer(vehicles []entities.Vehicle, customerID string) []entities.Vehicle {
	var out []entities.Vehicle
	for _, v := range vehicles {
		if v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out
}

func coerceFloat(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func coerceInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func sortedFieldKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
