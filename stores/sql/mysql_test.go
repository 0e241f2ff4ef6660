package sqlstore_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	ges "github.com/go-ledger/ges"
	"github.com/go-ledger/ges/internal/storetest"
	sqlstore "github.com/go-ledger/ges/stores/sql"
)

func TestStore_MySQL_Compliance(t *testing.T) {
	t.Parallel()

	dsn := os.Getenv("MYSQL_DATABASE_URL")
	if dsn == "" {
		dsn = "root:password@tcp(localhost:3306)/ges?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err, "open database")
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Skipf("mysql unavailable, skipping: %v", err)
	}

	table := fmt.Sprintf("events_mysql_compliance_%d", os.Getpid())

	store := sqlstore.New(db, sqlstore.MySQL(), ges.NewBridge(storetest.Registry()), sqlstore.WithTable(table))
	_, err = db.ExecContext(ctx, store.Schema())
	require.NoError(t, err, "create schema")
	t.Cleanup(func() { _, _ = db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table) })

	storetest.Run(t, func(t *testing.T) ges.EventStore {
		t.Helper()
		return store
	})
}
