package request

import (
	"oficina_xpto/internal/domain/entities"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToEntity maps the payload to a Customer. id is empty on create; on update
// it comes from the path parameter.
func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:      id,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
