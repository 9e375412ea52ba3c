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

	"court-reserve/internal/domain/court"
	"court-reserve/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every fixture user can log in with.
const TestPassword = "password123"

var (
	hashOnce    sync.Once
	testHash    string
	testHashErr error
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		testHash, testHashErr = password.HashPassword(TestPassword)
	})
	require.NoError(t, testHashErr)
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, email, fullName string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash(t))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
		require.NoError(t, err)
		return userID
	}

	_, err = db.Exec(ctx,
		"INSERT INTO profiles (user_id, full_name, email) VALUES ($1, $2, $3) ON CONFLICT (user_id) DO NOTHING",
		userID, fullName, email)
	require.NoError(t, err)

	return userID
}

func CourtIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var courtID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM courts WHERE name = $1", name).Scan(&courtID)
	require.NoError(t, err)
	return courtID
}

// inserts basic reference data needed by tests; the courts go through
// the domain constructor so seeds obey the same name rules as real rows
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	seeds := []struct{ name, displayName string }{
		{"court-a", "Court A"},
		{"court-b", "Court B"},
	}
	for _, seed := range seeds {
		c, err := court.NewCourt(uuid.New(), seed.name, seed.displayName)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO courts (id, name, display_name, is_active) VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING`,
			c.ID(), c.Name(), c.DisplayName(), c.IsActive())
		if err != nil {
			return err
		}
	}

	return nil
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
