package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/pyme-segmenter/internal/domain"
	"github.com/bnema/pyme-segmenter/internal/ports"
)

const (
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
	tempFilePattern = ".session-*.toml.tmp"
)

var ErrSessionNotFound = errors.New("session file not found")

// Provider reads the host session from a TOML file and resolves
// client_secret_ref through secrets.
type Provider struct {
	path    string
	secrets ports.SecretReader
	mu      sync.RWMutex
}

var _ ports.HostSessionProvider = (*Provider)(nil)

func NewProvider(path string, secrets ports.SecretReader) (*Provider, error) {
	if path == "" {
		return nil, errors.New("session path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}

	return &Provider{path: filepath.Clean(absPath), secrets: secrets}, nil
}

func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) Session(ctx context.Context) (domain.HostSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.HostSession{}, err
	}

	p.mu.RLock()
	file, err := p.readSchema()
	p.mu.RUnlock()
	if err != nil {
		return domain.HostSession{}, err
	}

	secret := file.Credentials.ClientSecret
	if ref := file.Credentials.ClientSecretRef; ref != "" {
		if p.secrets == nil {
			return domain.HostSession{}, fmt.Errorf("resolve client_secret_ref %q: no secret reader configured", ref)
		}
		secret, err = p.secrets.Get(ctx, ref)
		if err != nil {
			return domain.HostSession{}, fmt.Errorf("resolve client_secret_ref: %w", err)
		}
	}

	return fromSchema(file, secret), nil
}

// Save writes session atomically. When secretRef is set the secret itself
// is not written.
func (p *Provider) Save(ctx context.Context, session domain.HostSession, secretRef string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	file := toSchema(session, secretRef)
	file.applyDefaults()
	return p.writeSchema(file)
}

func (p *Provider) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, fmt.Errorf("%w: %s", ErrSessionNotFound, p.path)
		}
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	if err := file.validateSecret(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (p *Provider) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(p.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(p.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, p.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	cleanup = false

	return nil
}
