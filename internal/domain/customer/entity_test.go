//go:build unit

package customer_test

import (
	"testing"

	"hotel-reservations/internal/domain/customer"

	"github.com/stretchr/testify/assert"
)

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c := customer.NewCustomer("Alice", "alice@example.com")

		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "alice@example.com", c.Email())
		assert.Equal(t, "Alice - alice@example.com", c.String())
	})

	t.Run("Update replaces the natural key too", func(t *testing.T) {
		c := customer.NewCustomer("Alice", "alice@example.com")

		c.Update("Alicia", "alicia@example.com")
		assert.Equal(t, "Alicia", c.Name())
		assert.Equal(t, "alicia@example.com", c.Email())
	})
}
