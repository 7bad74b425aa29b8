//go:build unit

package user_test

import (
	"testing"

	"github.com/arjitrawat15/Stavia/internal/domain/user"
	"github.com/arjitrawat15/Stavia/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected, err := user.NewUser("Test User", email, "hashed_password", "+1 555 0100")
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.FullName())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case with spaces",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("a@example.com")
	require.NoError(t, err)

	t.Run("trims name and phone", func(t *testing.T) {
		u, err := user.NewUser("  Ada  ", email, "hash", " +44 1 ")
		require.NoError(t, err)
		assert.Equal(t, "Ada", u.FullName())
		assert.Equal(t, "+44 1", u.Phone())
	})

	t.Run("blank name", func(t *testing.T) {
		u, err := user.NewUser("   ", email, "hash", "")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrInvalidFullName)
	})
}

func TestNewEmail(t *testing.T) {
	email, err := user.NewEmail("  Mixed.Case@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "mixed.case@example.com", email.Value())
}

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "valid", email: "a@example.com", password: "secret1"},
		{name: "minimum length password", email: "a@example.com", password: "123456"},
		{name: "short password", email: "a@example.com", password: "12345", errIs: user.ErrPasswordTooWeak},
		{name: "bad email", email: "a@", password: "secret1", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := user.NewCredentials(tt.email, tt.password)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, creds.Email().Value())
			assert.Equal(t, tt.password, creds.Password().Value())
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
