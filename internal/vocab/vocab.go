// Package vocab supplies the word lists profile synthesis draws from.
package vocab

import (
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// Category names one word list.
type Category int

const (
	Headline Category = iota
	Bio
	Skill
	Role
	CompanyPrefix
	CompanySuffix
	ExperienceDescription
	ProjectName
	ProjectDescription
	Institution
	Degree
	Field
)

var categoryNames = [...]string{
	Headline:              "headline",
	Bio:                   "bio",
	Skill:                 "skill",
	Role:                  "role",
	CompanyPrefix:         "company_prefix",
	CompanySuffix:         "company_suffix",
	ExperienceDescription: "experience_description",
	ProjectName:           "project_name",
	ProjectDescription:    "project_description",
	Institution:           "institution",
	Degree:                "degree",
	Field:                 "field",
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Provider is a read-only source of vocabulary.
type Provider interface {
	// Sample returns one uniformly chosen entry, or "" if the list is empty.
	Sample(r *rand.Rand, c Category) string
	// Pool returns every distinct entry of a category.
	Pool(c Category) []string
}

// Static serves fixed in-memory lists.
type Static struct {
	lists map[Category][]string
}

// NewStatic returns a provider over the built-in tables.
func NewStatic() *Static {
	return FromLists(builtin)
}

// FromLists builds a provider over caller supplied lists. Duplicates are
// dropped so subset draws never repeat a value.
func FromLists(lists map[Category][]string) *Static {
	s := &Static{lists: make(map[Category][]string, len(lists))}
	for c, l := range lists {
		s.lists[c] = lo.Uniq(l)
	}
	return s
}

// Sample implements Provider.
func (s *Static) Sample(r *rand.Rand, c Category) string {
	l := s.lists[c]
	if len(l) == 0 {
		return ""
	}
	return l[r.IntN(len(l))]
}

// Pool implements Provider. The returned slice is a copy.
func (s *Static) Pool(c Category) []string {
	return slices.Clone(s.lists[c])
}
