package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/usd-converter/internal/clients/cache"
	"max.ks1230/usd-converter/internal/config"
)

func Test_OnAmountFlag_ShouldNotPrompt(t *testing.T) {
	var out bytes.Buffer

	input, ok := readAmount(strings.NewReader("ignored\n"), &out, "42")

	require.True(t, ok)
	assert.Equal(t, "42", input)
	assert.Empty(t, out.String())
}

func Test_OnNoAmountFlag_ShouldPromptAndReadLine(t *testing.T) {
	var out bytes.Buffer

	input, ok := readAmount(strings.NewReader("100\n200\n"), &out, "")

	require.True(t, ok)
	assert.Equal(t, "100\n", input)
	assert.Equal(t, "Enter amount in USD:\n", out.String())
}

func Test_OnInputWithoutNewline_ShouldReadIt(t *testing.T) {
	input, ok := readAmount(strings.NewReader("7"), &bytes.Buffer{}, "")

	require.True(t, ok)
	assert.Equal(t, "7", input)
}

func Test_OnFileBackend_ShouldWriteToConfiguredPath(t *testing.T) {
	ctx := context.Background()
	conf := config.Default()
	conf.Cache().File = filepath.Join(t.TempDir(), "rates.json")

	store, err := newStore(ctx, conf)
	require.NoError(t, err)
	require.IsType(t, &cache.FileStore{}, store)

	require.NoError(t, store.Write(ctx, []byte(`{"rates":{}}`)))
	raw, err := os.ReadFile(conf.Cache().FilePath())
	require.NoError(t, err)
	assert.Equal(t, `{"rates":{}}`, string(raw))
}

func Test_OnMemoryBackend_ShouldStartEmpty(t *testing.T) {
	conf := config.Default()
	conf.Cache().Kind = config.BackendMemory

	store, err := newStore(context.Background(), conf)
	require.NoError(t, err)

	_, err = store.Read(context.Background())
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func Test_OnUnknownBackend_ShouldFail(t *testing.T) {
	conf := config.Default()
	conf.Cache().Kind = "etcd"

	_, err := newStore(context.Background(), conf)
	assert.Error(t, err)
}
