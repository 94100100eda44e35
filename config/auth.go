package config

import (
	"fmt"
	"strings"
	"time"
)

// DirectoryMode represents which identity directory backs sign-in.
type DirectoryMode string

const (
	// DirectoryModePostgres verifies credentials against the users table.
	DirectoryModePostgres DirectoryMode = "postgres"
	// DirectoryModeStatic uses a fixed dev user list (for development only).
	DirectoryModeStatic DirectoryMode = "static"
)

// UnmarshalText implements encoding.TextUnmarshaler for DirectoryMode.
func (d *DirectoryMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "postgres", "static":
		*d = DirectoryMode(v)
		return nil
	default:
		return fmt.Errorf("invalid DirectoryMode: %q (valid options: postgres, static)", v)
	}
}

// DevUsersConfig controls the static directory used when AUTH_MODE=static.
// Entries are username:password:role triples.
type DevUsersConfig struct {
	Users []string `env:"USERS" envDefault:"admin:admin:admin;teacher:teacher:teacher;student:student:student" envSeparator:";"`
}

// AuthConfig groups directory and session configuration.
type AuthConfig struct {
	// Mode determines which identity directory to use.
	Mode DirectoryMode `env:"AUTH_MODE" envDefault:"postgres"`

	// SessionTTL is how long a signed-in session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// DevUsers configuration (used when Mode=static).
	DevUsers DevUsersConfig `envPrefix:"DEV_AUTH_"`

	// SeedUsers seeds the dev user list into the database on startup
	// (development only).
	SeedUsers bool `env:"AUTH_SEED_USERS" envDefault:"false"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}

// DevUser is one parsed entry of the static dev user list.
type DevUser struct {
	Username string
	Password string
	Role     string
}

// ParseDevUsers parses the username:password:role entries of the dev user
// list.
func (d DevUsersConfig) ParseDevUsers() ([]DevUser, error) {
	users := make([]DevUser, 0, len(d.Users))
	for _, entry := range d.Users {
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid dev user entry %q (want username:password:role)", entry)
		}
		users = append(users, DevUser{Username: parts[0], Password: parts[1], Role: parts[2]})
	}
	return users, nil
}
