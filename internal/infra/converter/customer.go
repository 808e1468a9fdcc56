package converter

import (
	"hotel-reservations/internal/domain/customer"
	"hotel-reservations/internal/infra/record"
)

func CustomerToRecord(c *customer.Customer) record.Customer {
	return record.Customer{
		Name:  c.Name(),
		Email: c.Email(),
	}
}

func CustomersToRecords(customers []*customer.Customer) []record.Customer {
	recs := make([]record.Customer, 0, len(customers))
	for _, c := range customers {
		recs = append(recs, CustomerToRecord(c))
	}
	return recs
}

func CustomersFromRecords(recs []record.Customer) []*customer.Customer {
	customers := make([]*customer.Customer, 0, len(recs))
	for _, rec := range recs {
		customers = append(customers, customer.NewCustomer(rec.Name, rec.Email))
	}
	return customers
}
