package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithSpinnerWritesPlainLabelOffTerminal(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	called := false
	err := runWithSpinner(context.Background(), out, "Cargando recursos...", func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "Cargando recursos...\n", out.String())
}

func TestRunWithSpinnerReturnsTaskError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := runWithSpinner(context.Background(), &bytes.Buffer{}, "", func(context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestRunWithSpinnerPassesContextToTask(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runWithSpinner(ctx, &bytes.Buffer{}, "", func(ctx context.Context) error {
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadingModelQuitsWithLoadResult(t *testing.T) {
	t.Parallel()

	model := newLoadingModel("Cargando", time.Now().Add(-3*time.Second), nil)
	assert.Contains(t, model.View(), "Cargando 3s")

	ticked, _ := model.Update(spinner.TickMsg{})
	assert.False(t, ticked.(loadingModel).done)

	boom := errors.New("boom")
	final, cmd := model.Update(loadDoneMsg{err: boom})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, final.(loadingModel).done)
	assert.ErrorIs(t, final.(loadingModel).err, boom)
	assert.Empty(t, final.View())
}
