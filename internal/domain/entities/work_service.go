package entities

// WorkService is a named standard labor offering with a standard price.
// It pre-fills, but does not constrain, service order labor lines.
type WorkService struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	StandardPrice float64 `json:"standardPrice"`
}
