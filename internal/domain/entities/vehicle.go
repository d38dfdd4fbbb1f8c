package entities

// Vehicle belongs to exactly one customer. License plates are unique per
// shop, but uniqueness is not enforced at this layer.
type Vehicle struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	ModelYear    int    `json:"modelYear"`
	LicensePlate string `json:"licensePlate"`
	CustomerID   string `json:"customerId"`
}
