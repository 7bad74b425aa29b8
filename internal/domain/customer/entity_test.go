//go:build unit

package customer_test

import (
	"testing"

	"github.com/arjitrawat15/Stavia/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		email string
		phone string
		errIs error
	}{
		{name: "valid", full: "Ada", email: "ada@example.com", phone: "+44 1"},
		{name: "blank name", full: " ", email: "ada@example.com", phone: "+44 1", errIs: customer.ErrInvalidName},
		{name: "bad email", full: "Ada", email: "ada.example.com", phone: "+44 1", errIs: customer.ErrInvalidEmail},
		{name: "blank phone", full: "Ada", email: "ada@example.com", phone: "", errIs: customer.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := customer.NewCustomer(tt.full, tt.email, tt.phone)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, c.Email())
		})
	}
}

func TestNewCustomerKeepsEmailCase(t *testing.T) {
	c, err := customer.NewCustomer("Ada", "Ada@Example.com", "+44 1")
	require.NoError(t, err)
	assert.Equal(t, "Ada@Example.com", c.Email())
}
