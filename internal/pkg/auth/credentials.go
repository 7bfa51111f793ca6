// internal/pkg/auth/credentials.go
package auth

import (
	"fmt"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Grant is the outcome of a credential check
type Grant int

const (
	GrantNone Grant = iota
	GrantUser
	GrantAdmin
)

// CredentialPolicy implements the mock authentication policy. There is no
// identity backend: one designated email/password pair grants the admin
// identity, any email paired with the designated generic password grants a
// regular identity, and everything else fails. The designated literals are
// kept only as bcrypt hashes.
type CredentialPolicy struct {
	adminEmail  string
	adminHash   []byte
	genericHash []byte
}

// NewCredentialPolicy hashes the designated credentials from config
func NewCredentialPolicy(cfg *config.Config) (*CredentialPolicy, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	genericHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.GenericPassword), cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash generic password: %w", err)
	}

	return &CredentialPolicy{
		adminEmail:  strings.ToLower(cfg.Auth.AdminEmail),
		adminHash:   adminHash,
		genericHash: genericHash,
	}, nil
}

// Authenticate evaluates an email/password pair against the policy
func (p *CredentialPolicy) Authenticate(email, password string) Grant {
	if strings.EqualFold(email, p.adminEmail) {
		if bcrypt.CompareHashAndPassword(p.adminHash, []byte(password)) == nil {
			return GrantAdmin
		}
		// The admin email does not fall through to the generic password
		return GrantNone
	}

	if bcrypt.CompareHashAndPassword(p.genericHash, []byte(password)) == nil {
		return GrantUser
	}

	return GrantNone
}
