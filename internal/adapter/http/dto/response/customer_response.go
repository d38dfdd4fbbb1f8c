package response

import (
	"oficina_xpto/internal/domain/entities"
)

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}

// SelectOption is a minimal projection for drop-down style consumers.
type SelectOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func CustomerOptions(cs []entities.Customer) []SelectOption {
	out := make([]SelectOption, 0, len(cs))
	for _, c := range cs {
		out = append(out, SelectOption{ID: c.ID, Label: c.Name})
	}
	return out
}
