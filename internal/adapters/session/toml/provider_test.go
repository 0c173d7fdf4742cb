package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pyme-segmenter/internal/domain"
	portmocks "github.com/bnema/pyme-segmenter/internal/ports/mocks"
)

func writeSession(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestProviderSessionReadsInlineSecret(t *testing.T) {
	t.Parallel()

	path := writeSession(t, `
[credentials]
url = "https://acme.fs.ocs.oraclecloud.com/"
client_id = " plugin "
client_secret = "s3cret"

[user]
login = "ana"
allowed_users = "ana;bob"
`)

	provider, err := NewProvider(path, nil)
	require.NoError(t, err)

	session, err := provider.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HostSession{
		Credentials: domain.Credentials{
			URL:          "https://acme.fs.ocs.oraclecloud.com",
			ClientID:     "plugin",
			ClientSecret: "s3cret",
		},
		Login:        "ana",
		AllowedUsers: "ana;bob",
	}, session)
	assert.True(t, session.LoginAllowed())
}

func TestProviderSessionResolvesSecretRef(t *testing.T) {
	t.Parallel()

	path := writeSession(t, `
version = 1
[credentials]
url = "https://acme.example"
client_id = "plugin"
client_secret_ref = "pass:ofsc/plugin"
[user]
login = "ana"
`)

	secrets := portmocks.NewMockSecretReader(t)
	secrets.EXPECT().Get(mock.Anything, "pass:ofsc/plugin").Return("from-pass", nil).Once()

	provider, err := NewProvider(path, secrets)
	require.NoError(t, err)

	session, err := provider.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-pass", session.Credentials.ClientSecret)
}

func TestProviderSessionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		secrets func(t *testing.T) *portmocks.MockSecretReader
		want    string
	}{
		{
			name: "future version",
			body: "version = 9\n",
			want: "unsupported session schema version 9",
		},
		{
			name: "malformed",
			body: "[credentials\n",
			want: "decode session file",
		},
		{
			name: "both secret forms",
			body: "[credentials]\nclient_secret = \"a\"\nclient_secret_ref = \"env:B\"\n",
			want: "not both",
		},
		{
			name: "secret reader failure",
			body: "[credentials]\nclient_secret_ref = \"pass:missing\"\n",
			secrets: func(t *testing.T) *portmocks.MockSecretReader {
				m := portmocks.NewMockSecretReader(t)
				m.EXPECT().Get(mock.Anything, "pass:missing").Return("", errors.New("not in store")).Once()
				return m
			},
			want: "not in store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var provider *Provider
			var err error
			if tt.secrets != nil {
				provider, err = NewProvider(writeSession(t, tt.body), tt.secrets(t))
			} else {
				provider, err = NewProvider(writeSession(t, tt.body), nil)
			}
			require.NoError(t, err)

			_, err = provider.Session(context.Background())
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestProviderSessionMissingFile(t *testing.T) {
	t.Parallel()

	provider, err := NewProvider(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)

	_, err = provider.Session(context.Background())
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProviderSaveRoundTripWithRef(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "session.toml")
	secrets := portmocks.NewMockSecretReader(t)
	secrets.EXPECT().Get(mock.Anything, "env:OFS_SECRET").Return("resolved", nil).Once()

	provider, err := NewProvider(path, secrets)
	require.NoError(t, err)

	saved := domain.HostSession{
		Credentials:  domain.Credentials{URL: "https://acme.example", ClientID: "plugin", ClientSecret: "ignored"},
		Login:        "ana",
		AllowedUsers: "ana",
	}
	require.NoError(t, provider.Save(context.Background(), saved, "env:OFS_SECRET"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ignored")

	loaded, err := provider.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "resolved", loaded.Credentials.ClientSecret)
	assert.Equal(t, "ana", loaded.Login)
}
