package entities

// Part is an inventory catalog entry. Code is the SKU, unique per shop.
//
// UnitPrice is the current catalog price; order lines snapshot it at
// composition time and are not affected by later catalog changes.
type Part struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	UnitPrice float64 `json:"unitPrice"`
	Stock     int     `json:"stock"`
}
