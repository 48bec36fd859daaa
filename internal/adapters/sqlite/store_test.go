package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/sqlite"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/storetest"
)

func TestSQLiteStore(t *testing.T) {
	dir := t.TempDir()
	n := 0
	s := &storetest.Suite{}
	s.NewStore = func() storetest.Store {
		n++
		db, err := sqlite.Open(context.Background(), filepath.Join(dir, fmt.Sprintf("store-%d.db", n)))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return db
	}
	suite.Run(t, s)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "govassess.db")
	ctx := context.Background()

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
