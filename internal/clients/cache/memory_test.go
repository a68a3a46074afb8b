package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnEmptyMemoryStore_ShouldReturnNotFound(t *testing.T) {
	_, err := NewMemoryStore().Read(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_OnMemoryStoreWrite_ShouldCopyData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	data := []byte(`{"rates":{}}`)

	require.NoError(t, store.Write(ctx, data))
	data[0] = 'x'

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"rates":{}}`, string(got))
}
