package customer

import "fmt"

// Customer carries no generated id; the email acts as its natural key and is
// itself replaceable through Update.
type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) *Customer {
	return &Customer{
		name:  name,
		email: email,
	}
}

// Update replaces both fields, including the natural key.
func (c *Customer) Update(name, email string) {
	c.name = name
	c.email = email
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s - %s", c.name, c.email)
}

func (c *Customer) Name() string  { return c.name }
func (c *Customer) Email() string { return c.email }
