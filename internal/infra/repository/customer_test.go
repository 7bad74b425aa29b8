//go:build unit

package repository

import (
	"context"
	"testing"

	"github.com/arjitrawat15/Stavia/internal/domain/customer"
	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_ResolveOrCreate(t *testing.T) {
	existingID := uuid.New()

	tests := []struct {
		name       string
		inserted   int64
		insertErr  error
		storedRow  sqlc.Customers
		wantID     func(c *customer.Customer) uuid.UUID
		wantName   string
		wantErrKnd infra.RepositoryErrorKind
	}{
		{
			name:     "new customer is inserted",
			inserted: 1,
			wantID:   func(c *customer.Customer) uuid.UUID { return c.ID() },
			wantName: "Jane Doe",
		},
		{
			name:     "existing customer wins",
			inserted: 0,
			storedRow: sqlc.Customers{
				ID:       existingID,
				FullName: "Jane First",
				Email:    "jane@example.com",
				Phone:    "+100",
			},
			wantID:   func(*customer.Customer) uuid.UUID { return existingID },
			wantName: "Jane First",
		},
		{
			name:       "insert fails",
			insertErr:  assert.AnError,
			wantErrKnd: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := customer.NewCustomer("Jane Doe", "jane@example.com", "+1 555 0100")
			require.NoError(t, err)

			q := new(MockQueries)
			q.On("InsertCustomerIfAbsent", mock.Anything, q, sqlc.InsertCustomerIfAbsentParams{
				ID:       c.ID(),
				FullName: "Jane Doe",
				Email:    "jane@example.com",
				Phone:    "+1 555 0100",
			}).Return(tt.inserted, tt.insertErr)

			if tt.insertErr == nil {
				row := tt.storedRow
				if tt.inserted == 1 {
					row = sqlc.Customers{ID: c.ID(), FullName: c.FullName(), Email: c.Email(), Phone: c.Phone()}
				}
				q.On("FindCustomerByEmail", mock.Anything, q, "jane@example.com").Return(row, nil)
			}

			repo := NewCustomerRepository(q)
			got, err := repo.ResolveOrCreate(context.Background(), q, c)

			if tt.wantErrKnd != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantErrKnd))
				q.AssertNotCalled(t, "FindCustomerByEmail", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID(c), got.ID())
			assert.Equal(t, tt.wantName, got.FullName())
			q.AssertExpectations(t)
		})
	}
}
