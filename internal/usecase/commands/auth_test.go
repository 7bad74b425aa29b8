//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/user"
	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/jwt"
	"github.com/arjitrawat15/Stavia/internal/pkg/password"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"
	queriesmock "github.com/arjitrawat15/Stavia/tests/mock/queries"
	sharedmock "github.com/arjitrawat15/Stavia/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	users      *sharedmock.MockUserRepository
	readStore  *queriesmock.MockUserReadStore
	jwtService *jwt.Service
	hasher     *password.Hasher
	commands   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.jwtService = jwt.NewService("test-secret-key-for-stavia-tests", time.Hour)
	s.hasher = password.NewHasherWithCost(bcrypt.MinCost)
	s.commands = commands.NewAuthCommands(s.uow, s.readStore, s.jwtService, s.hasher)

	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) expectTransaction() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *AuthCommandsTestSuite) expectDB() {
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *AuthCommandsTestSuite) TestSignup() {
	s.Run("stores a lowercased email and issues a token", func() {
		s.SetupTest()
		s.expectTransaction()
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) (*user.User, error) {
				s.Equal("jane@example.com", u.Email().Value())
				s.NoError(s.hasher.Compare(u.PasswordHash(), "secret123"))
				return u, nil
			})

		got, err := s.commands.Signup(context.Background(), commands.SignupInput{
			FullName:    "Jane Doe",
			Email:       "  Jane@Example.com ",
			Password:    "secret123",
			PhoneNumber: "+1 555 0100",
		})

		s.Require().NoError(err)
		s.Equal("jane@example.com", got.Email)
		s.Equal("Jane Doe", got.FullName)
		s.Equal(time.Hour, got.ExpiresIn)

		claims, err := s.jwtService.ValidateToken(got.Token)
		s.Require().NoError(err)
		s.Equal(got.UserID, claims.UserID)
		s.Equal("jane@example.com", claims.Email)
	})

	s.Run("duplicate email", func() {
		s.SetupTest()
		s.expectTransaction()
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey))

		_, err := s.commands.Signup(context.Background(), commands.SignupInput{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "secret123",
		})

		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("rejects invalid input before touching the store", func() {
		tests := []struct {
			name string
			in   commands.SignupInput
		}{
			{name: "bad email", in: commands.SignupInput{FullName: "Jane", Email: "not-an-email", Password: "secret123"}},
			{name: "short password", in: commands.SignupInput{FullName: "Jane", Email: "jane@example.com", Password: "abc"}},
			{name: "blank name", in: commands.SignupInput{FullName: "  ", Email: "jane@example.com", Password: "secret123"}},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				s.SetupTest()

				_, err := s.commands.Signup(context.Background(), tt.in)

				s.ErrorIs(err, commands.ErrInvalidSignup)
			})
		}
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	hash, err := s.hasher.Hash("secret123")
	s.Require().NoError(err)
	view := &queries.UserView{
		ID:       uuid.New(),
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}

	s.Run("valid credentials", func() {
		s.SetupTest()
		s.expectDB()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jane@example.com").Return(view, hash, nil)

		got, err := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    "JANE@example.com",
			Password: "secret123",
		})

		s.Require().NoError(err)
		s.Equal(view.ID, got.UserID)
		s.NotEmpty(got.Token)
	})

	s.Run("wrong password", func() {
		s.SetupTest()
		s.expectDB()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jane@example.com").Return(view, hash, nil)

		_, err := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})

		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown email", func() {
		s.SetupTest()
		s.expectDB()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "nobody@example.com").
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.commands.Login(context.Background(), commands.LoginInput{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})
}
