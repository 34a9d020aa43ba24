// Package identity maps seed indices to deterministic user identities.
// The same index always yields the same identity, so reruns hit the same
// accounts on the target API.
package identity

import "fmt"

const (
	handlePrefix = "userseed"
	emailDomain  = "email.com"
	firstName    = "Seed"
)

// Identity holds the account data derived from a seed index.
type Identity struct {
	Index     int    `json:"index"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// New derives the identity for index i.
func New(i int) Identity {
	return Identity{
		Index:     i,
		FirstName: firstName,
		LastName:  fmt.Sprintf("User%d", i),
		Email:     Handle(i) + "@" + emailDomain,
	}
}

// Handle returns the username used for email and social links, e.g. "userseed7".
func Handle(i int) string {
	return fmt.Sprintf("%s%d", handlePrefix, i)
}

// Handle returns the identity's username.
func (id Identity) Handle() string {
	return Handle(id.Index)
}

// DisplayName returns "<first> <last>".
func (id Identity) DisplayName() string {
	return id.FirstName + " " + id.LastName
}
