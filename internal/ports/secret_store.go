package ports

import "context"

// SecretReader resolves a secret reference such as "pass:ofsc/client_secret".
type SecretReader interface {
	Get(ctx context.Context, ref string) (string, error)
}
