// Package credential decides which password a seeded identity uses.
// Seed accounts are throwaway test data; none of this is fit for real users.
package credential

import (
	"sync"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zseed/internal/identity"
)

// DefaultPassword is shared by every seeded account so reruns can log in.
const DefaultPassword = "userseed123"

// Credential is the email/password pair submitted to the auth endpoints.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Strategy produces the password for an identity.
type Strategy interface {
	Password(id identity.Identity) string
}

// Func adapts a plain function to a Strategy.
type Func func(id identity.Identity) string

// Password implements Strategy.
func (f Func) Password(id identity.Identity) string {
	return f(id)
}

// For builds the credential for id using s.
func For(s Strategy, id identity.Identity) Credential {
	return Credential{
		Email:    id.Email,
		Password: s.Password(id),
	}
}

// Fixed returns a strategy that hands every identity the same password.
func Fixed(password string) Strategy {
	return Func(func(identity.Identity) string {
		return password
	})
}

// Default is Fixed(DefaultPassword).
func Default() Strategy {
	return Fixed(DefaultPassword)
}

// Generated returns a strategy that creates a random password per identity.
// Passwords are remembered for the lifetime of the strategy, so register and
// login within one run agree, but a second run cannot log in to accounts
// created by the first.
func Generated(length int) Strategy {
	return &generated{
		length: length,
		seen:   make(map[string]string),
	}
}

type generated struct {
	mu     sync.Mutex
	length int
	seen   map[string]string
}

func (g *generated) Password(id identity.Identity) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if pw, ok := g.seen[id.Email]; ok {
		return pw
	}
	pw := zcrypto.GeneratePassword(g.length)
	g.seen[id.Email] = pw
	return pw
}
