package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/user"
	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/errs"
	"github.com/arjitrawat15/Stavia/internal/pkg/jwt"
	"github.com/arjitrawat15/Stavia/internal/pkg/password"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInvalidSignup      = errs.New("invalid signup request")
	ErrEmailTaken         = errs.New("user with this email already exists")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type SignupInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token     string
	ExpiresIn time.Duration
	UserID    uuid.UUID
	Email     string
	FullName  string
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     *password.Hasher
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, hasher *password.Hasher) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(in.FullName, credentials.Email(), hash, in.PhoneNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Users().Create(ctx, tx.DB(), newUser)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.Info("user registered", "user_id", created.ID().String())

	return a.issueToken(created.ID(), created.Email().Value(), created.FullName())
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	var (
		view *queries.UserView
		hash string
	)
	err = a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, hash, err = a.readStore.FindByEmail(ctx, db, email.Value())
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(hash, in.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return a.issueToken(view.ID, view.Email, view.FullName)
}

func (a *authCommandsImpl) issueToken(userID uuid.UUID, email, fullName string) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		Token:     token,
		ExpiresIn: a.jwtService.TokenDuration(),
		UserID:    userID,
		Email:     email,
		FullName:  fullName,
	}, nil
}
