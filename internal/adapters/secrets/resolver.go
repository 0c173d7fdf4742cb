package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	filestore "github.com/bnema/pyme-segmenter/internal/adapters/secrets/file"
	passstore "github.com/bnema/pyme-segmenter/internal/adapters/secrets/pass"
	"github.com/bnema/pyme-segmenter/internal/ports"
)

const (
	SchemePass = "pass"
	SchemeFile = "file"
	SchemeEnv  = "env"
)

var ErrUnknownScheme = errors.New("unknown secret reference scheme")

// Resolver dispatches references of the form "<scheme>:<key>" to the
// matching backend.
type Resolver struct {
	backends map[string]ports.SecretReader
}

var _ ports.SecretReader = (*Resolver)(nil)

// NewResolver wires the pass, file and env backends. Relative file keys
// resolve under fileRoot.
func NewResolver(fileRoot string) *Resolver {
	return NewResolverWith(map[string]ports.SecretReader{
		SchemePass: passstore.NewStore(),
		SchemeFile: filestore.NewStore(fileRoot),
		SchemeEnv:  envReader{},
	})
}

func NewResolverWith(backends map[string]ports.SecretReader) *Resolver {
	return &Resolver{backends: backends}
}

func (r *Resolver) Get(ctx context.Context, ref string) (string, error) {
	scheme, key, ok := strings.Cut(strings.TrimSpace(ref), ":")
	if !ok || key == "" {
		return "", fmt.Errorf("secret reference %q must look like <scheme>:<key>", ref)
	}

	backend, ok := r.backends[strings.ToLower(scheme)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownScheme, scheme)
	}

	value, err := backend.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("resolve %s secret: %w", scheme, err)
	}
	if value == "" {
		return "", fmt.Errorf("%s secret %q is empty", scheme, key)
	}

	return value, nil
}

type envReader struct{}

func (envReader) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("environment variable %s is not set", key)
	}
	return value, nil
}
