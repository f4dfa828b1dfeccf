//go:build unit

package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"tour-booking-console/internal/infra/kvstore"
	"tour-booking-console/internal/infra/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runKVContract(t *testing.T, kv progress.KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put(ctx, "k", []byte("v1")))
	require.NoError(t, kv.Put(ctx, "k", []byte("v2")))

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)

	got[0] = 'x'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), again, "returned slices must not alias storage")

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"), "deleting twice is fine")
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryKV(t *testing.T) {
	runKVContract(t, kvstore.NewMemoryKV())
}

func TestBoltKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.db")
	kv, err := kvstore.OpenBolt(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	runKVContract(t, kv)
}

func TestBoltKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	kv, err := kvstore.OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "booking_wizard_progress:x", []byte(`{"currentStep":2}`)))
	require.NoError(t, kv.Close())

	reopened, err := kvstore.OpenBolt(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, ok, err := reopened.Get(ctx, "booking_wizard_progress:x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"currentStep":2}`, string(got))
}
