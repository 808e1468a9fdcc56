package usecase

import (
	"log/slog"
	"sync"

	"hotel-reservations/internal/domain/customer"
	"hotel-reservations/internal/infra/converter"
	"hotel-reservations/internal/infra/jsonstore"
	"hotel-reservations/internal/infra/record"
	"hotel-reservations/internal/pkg/errs"
)

// CustomersManager owns the authoritative in-memory customer collection and
// keeps its backing document in sync. Email is the lookup key but is not
// unique: Get returns the first match, Edit and Remove touch every match.
type CustomersManager interface {
	AddCustomer(name, email string) (*customer.Customer, error)
	GetCustomer(email string) (*customer.Customer, error)
	EditCustomer(email, newName, newEmail string) error
	RemoveCustomer(email string) error
	ListCustomers() []*customer.Customer
	DisplayCustomer(email string)
}

type customersManagerImpl struct {
	mu        sync.Mutex
	doc       *jsonstore.Document
	customers []*customer.Customer
	logger    *slog.Logger
}

func NewCustomersManager(doc *jsonstore.Document, logger *slog.Logger) (CustomersManager, error) {
	m := &customersManagerImpl{
		doc:    doc,
		logger: logger,
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *customersManagerImpl) load() error {
	var recs []record.Customer
	if err := m.doc.Load(&recs); err != nil {
		return errs.Wrap(err, "failed to load customers document")
	}
	m.customers = converter.CustomersFromRecords(recs)
	return nil
}

func (m *customersManagerImpl) save() error {
	if err := m.doc.Store(converter.CustomersToRecords(m.customers)); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

// AddCustomer appends without a uniqueness check; duplicate emails are
// tolerated.
func (m *customersManagerImpl) AddCustomer(name, email string) (*customer.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := customer.NewCustomer(name, email)
	m.customers = append(m.customers, c)
	if err := m.save(); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *customersManagerImpl) GetCustomer(email string) (*customer.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.findCustomer(email)
}

func (m *customersManagerImpl) findCustomer(email string) (*customer.Customer, error) {
	for _, c := range m.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, errs.ErrCustomerNotFound
}

// EditCustomer updates every customer whose email matches, including the
// key itself. Zero matches is not an error.
func (m *customersManagerImpl) EditCustomer(email, newName, newEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.customers {
		if c.Email() == email {
			c.Update(newName, newEmail)
		}
	}
	return m.save()
}

// RemoveCustomer drops every customer whose email matches. Zero matches is
// not an error.
func (m *customersManagerImpl) RemoveCustomer(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.customers[:0]
	for _, c := range m.customers {
		if c.Email() != email {
			kept = append(kept, c)
		}
	}
	m.customers = kept
	return m.save()
}

func (m *customersManagerImpl) ListCustomers() []*customer.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*customer.Customer, len(m.customers))
	copy(out, m.customers)
	return out
}

// DisplayCustomer is a side-effect-only report; it is not part of the data
// contract.
func (m *customersManagerImpl) DisplayCustomer(email string) {
	c, err := m.GetCustomer(email)
	if err != nil {
		m.logger.Info("customer not found", "email", email)
		return
	}
	m.logger.Info("customer", "details", c.String())
}
