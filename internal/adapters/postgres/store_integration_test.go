//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/postgres"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/storetest"
)

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("govassess"),
		tcpostgres.WithUsername("govassess"),
		tcpostgres.WithPassword("govassess"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	// a second run must be a no-op
	require.NoError(t, db.Migrate(ctx))

	s := &storetest.Suite{}
	s.NewStore = func() storetest.Store {
		_, err := db.Pool.Exec(ctx, `TRUNCATE mitigation_items, completed_assessments, draft_assessment, notification_schedule RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
		return db
	}
	suite.Run(t, s)
}
