package repository

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/domain/user"
	"github.com/arjitrawat15/Stavia/internal/infra"
	"github.com/arjitrawat15/Stavia/internal/infra/repository/converter"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create fails with KindDuplicateKey when the email is taken.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, tx, converter.UserToInfra(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	created, err := converter.UserFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read back user", err)
	}
	return created, nil
}
