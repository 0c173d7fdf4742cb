package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetUsesPassShowAndKeepsFirstLine(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "ofsc/plugin/client_secret"}, args)
			return "top-secret\r\nlogin: plugin\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), " ofsc/plugin/client_secret ")
	require.NoError(t, err)
	assert.Equal(t, "top-secret", value)
}

func TestStoreGetIncludesStderrInError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			return "", "Error: ofsc/missing is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "ofsc/missing")
	require.Error(t, err)
	assert.ErrorContains(t, err, "not in the password store")
	assert.ErrorContains(t, err, "exit status 1")
}

func TestStoreGetRejectsEmptyKeyAndCanceledContext(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, ...string) (string, string, error) {
		t.Fatal("pass must not run")
		return "", "", nil
	}}

	_, err := store.Get(context.Background(), "  ")
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Get(ctx, "ofsc/plugin")
	require.ErrorIs(t, err, context.Canceled)
}
