package response

import (
	"hotel-reservations/internal/domain/customer"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		Name:  c.Name(),
		Email: c.Email(),
	}
}
