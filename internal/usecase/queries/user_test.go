//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	queriesmock "github.com/arjitrawat15/Stavia/tests/mock/queries"
	sharedmock "github.com/arjitrawat15/Stavia/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		userID    uuid.UUID
		setupMock func(store *queriesmock.MockUserReadStore)
		want      *queries.UserView
		wantErr   error
	}{
		{
			name:   "found",
			userID: userID,
			setupMock: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).
					Return(&queries.UserView{ID: userID, Email: "jane@example.com"}, nil)
			},
			want: &queries.UserView{ID: userID, Email: "jane@example.com"},
		},
		{
			name:   "deleted account",
			userID: userID,
			setupMock: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).
					Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrUserNotFound,
		},
		{
			name:      "no caller",
			userID:    uuid.Nil,
			setupMock: func(*queriesmock.MockUserReadStore) {},
			wantErr:   queries.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			store := queriesmock.NewMockUserReadStore(ctrl)
			uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
					return fn(ctx, nil)
				}).AnyTimes()
			tt.setupMock(store)

			got, err := queries.NewUserQueries(uow, store).GetCurrentUser(context.Background(), tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
