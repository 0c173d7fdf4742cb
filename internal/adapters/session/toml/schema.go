package toml

import (
	"fmt"
	"strings"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int               `toml:"version"`
	Credentials credentialsSchema `toml:"credentials"`
	User        userSchema        `toml:"user"`
}

type credentialsSchema struct {
	URL             string `toml:"url"`
	ClientID        string `toml:"client_id"`
	ClientSecret    string `toml:"client_secret,omitempty"`
	ClientSecretRef string `toml:"client_secret_ref,omitempty"`
}

type userSchema struct {
	Login        string `toml:"login"`
	AllowedUsers string `toml:"allowed_users"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	s.Credentials.URL = strings.TrimRight(strings.TrimSpace(s.Credentials.URL), "/")
	s.Credentials.ClientID = strings.TrimSpace(s.Credentials.ClientID)
	s.Credentials.ClientSecretRef = strings.TrimSpace(s.Credentials.ClientSecretRef)
	s.User.Login = strings.TrimSpace(s.User.Login)
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) validateSecret() error {
	if s.Credentials.ClientSecret != "" && s.Credentials.ClientSecretRef != "" {
		return fmt.Errorf("set either credentials.client_secret or credentials.client_secret_ref, not both")
	}
	return nil
}

func fromSchema(file fileSchema, secret string) domain.HostSession {
	return domain.HostSession{
		Credentials: domain.Credentials{
			URL:          file.Credentials.URL,
			ClientID:     file.Credentials.ClientID,
			ClientSecret: secret,
		},
		Login:        file.User.Login,
		AllowedUsers: file.User.AllowedUsers,
	}
}

// toSchema stores the secret inline only when no reference is given.
func toSchema(session domain.HostSession, secretRef string) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Credentials: credentialsSchema{
			URL:             session.Credentials.URL,
			ClientID:        session.Credentials.ClientID,
			ClientSecretRef: secretRef,
		},
		User: userSchema{
			Login:        session.Login,
			AllowedUsers: session.AllowedUsers,
		},
	}
	if secretRef == "" {
		file.Credentials.ClientSecret = session.Credentials.ClientSecret
	}
	return file
}
