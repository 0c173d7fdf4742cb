package domain

import "strings"

// Credentials address and authenticate against the workforce API.
type Credentials struct {
	URL          string `validate:"required,url"`
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
}

// HostSession is what the host hands over once per session start.
type HostSession struct {
	Credentials Credentials
	Login       string
	// AllowedUsers is a semicolon-delimited list of logins.
	AllowedUsers string
}

func (s HostSession) LoginAllowed() bool {
	login := strings.TrimSpace(s.Login)
	if login == "" {
		return false
	}
	for _, user := range strings.Split(strings.TrimSpace(s.AllowedUsers), ";") {
		if strings.TrimSpace(user) == login {
			return true
		}
	}
	return false
}
