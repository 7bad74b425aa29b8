//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arjitrawat15/Stavia/internal/infra/seed"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	hash, err := password.NewHasherWithCost(bcrypt.MinCost).Hash(DefaultPassword)
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `INSERT INTO users (id, full_name, email, password_hash) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`, userID, "Test User", strings.ToLower(email), hash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID))
	}

	return userID
}

type RoomFixture struct {
	HotelID  uuid.UUID
	RoomID   uuid.UUID
	Number   string
	Type     string
	Cents    int64
	Capacity int
}

// CreateHotelWithRoom inserts a hotel with one available room outside the demo catalog.
func CreateHotelWithRoom(t *testing.T, db DBLike, roomCents int64) RoomFixture {
	t.Helper()

	ctx := context.Background()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	f := RoomFixture{
		HotelID:  uuid.New(),
		RoomID:   uuid.New(),
		Number:   "T" + suffix,
		Type:     "Deluxe",
		Cents:    roomCents,
		Capacity: 2,
	}

	_, err := db.Exec(ctx, `INSERT INTO hotels (id, name, city, country, rating, price_per_night_cents)
		VALUES ($1, $2, 'Testville', 'Testland', 4.0, $3)`, f.HotelID, "Fixture Hotel "+suffix, roomCents)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO rooms (id, hotel_id, room_number, room_type, price_per_night_cents, capacity, available)
		VALUES ($1, $2, $3, $4, $5, $6, true)`, f.RoomID, f.HotelID, f.Number, f.Type, f.Cents, f.Capacity)
	require.NoError(t, err)

	return f
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func RoomAvailable(t *testing.T, db DBLike, roomID uuid.UUID) bool {
	t.Helper()
	var available bool
	require.NoError(t, db.QueryRow(context.Background(), "SELECT available FROM rooms WHERE id = $1", roomID).Scan(&available))
	return available
}

// inserts the demo catalog
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return seed.NewSeeder(pool, sqlc.New()).Run(ctx)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
