//go:build e2e

package e2e

import (
	"context"
	"testing"

	"tour-booking-console/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PostgresKVSuite struct {
	SharedSuite
}

func TestPostgresKVSuite(t *testing.T) {
	suite.Run(t, new(PostgresKVSuite))
}

func (s *PostgresKVSuite) TestRoundTrip() {
	s.Run("put, overwrite, get and delete", func() {
		ctx := context.Background()
		kv := kvstore.NewPostgresKV(s.DB)

		_, ok, err := kv.Get(ctx, "missing")
		require.NoError(s.T(), err)
		assert.False(s.T(), ok)

		require.NoError(s.T(), kv.Put(ctx, "k", []byte(`{"step":1}`)))
		require.NoError(s.T(), kv.Put(ctx, "k", []byte(`{"step":2}`)))

		v, ok, err := kv.Get(ctx, "k")
		require.NoError(s.T(), err)
		assert.True(s.T(), ok)
		assert.JSONEq(s.T(), `{"step":2}`, string(v))

		require.NoError(s.T(), kv.Delete(ctx, "k"))
		require.NoError(s.T(), kv.Delete(ctx, "k"), "deleting a missing key is not an error")

		_, ok, err = kv.Get(ctx, "k")
		require.NoError(s.T(), err)
		assert.False(s.T(), ok)
	})
}
