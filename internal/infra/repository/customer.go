package repository

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/domain/customer"
	"github.com/arjitrawat15/Stavia/internal/infra"
	"github.com/arjitrawat15/Stavia/internal/infra/repository/converter"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/pgconv"
)

type CustomerWriteQueries interface {
	InsertCustomerIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCustomerIfAbsentParams) (int64, error)
	FindCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
	}
}

// ResolveOrCreate inserts c unless a customer with the same email exists,
// then reads back whichever row holds that email.
func (r *CustomerRepository) ResolveOrCreate(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (*customer.Customer, error) {
	if _, err := r.queries.InsertCustomerIfAbsent(ctx, tx, converter.CustomerToInfra(c)); err != nil {
		return nil, infra.WrapRepoErr("failed to insert customer", err)
	}

	row, err := r.queries.FindCustomerByEmail(ctx, tx, c.Email())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer vanished after upsert", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}

	return converter.CustomerFromInfra(row), nil
}
