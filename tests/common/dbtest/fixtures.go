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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestMechanic(t *testing.T, db DBLike, name, specialty string, dailyCapacity int32) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO mechanics (name, specialty, daily_capacity) VALUES ($1, $2, $3) RETURNING id",
		name, specialty, dailyCapacity).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestBooking(t *testing.T, db DBLike, phone, date string, mechanicID int64) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (requester_name, address, phone, license_no, engine_no, appointment_date, mechanic_id)
		VALUES ('Test Requester', '1 Test Street', $1, 'DHA-TEST-0001', 'EN-TEST-0001', $2, $3)
		RETURNING id`,
		phone, date, mechanicID).Scan(&id)
	require.NoError(t, err)

	return id
}

func MechanicIDByName(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM mechanics WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts the mechanics every booking test depends on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO mechanics (name, specialty)
		SELECT v.name, v.specialty
		FROM (VALUES
		    ('Hasan Mahmud', 'engine'),
		    ('Jamal Uddin', 'transmission'),
		    ('Rafiq Islam', 'electrical'),
		    ('Selim Reza', 'bodywork')
		) AS v(name, specialty)
		WHERE NOT EXISTS (SELECT 1 FROM mechanics m WHERE m.name = v.name);
	`)
	if err != nil {
		return err
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
