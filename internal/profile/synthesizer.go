package profile

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/zarlcorp/zseed/internal/identity"
	"github.com/zarlcorp/zseed/internal/vocab"
)

// size bounds, inclusive
const (
	minSkills, maxSkills           = 4, 12
	minTechStack, maxTechStack     = 3, 8
	minTags, maxTags               = 2, 6
	minExperiences, maxExperiences = 1, 5
	minProjects, maxProjects       = 1, 4
	minEducations, maxEducations   = 1, 2
	minYears, maxYears             = 1, 20
)

const (
	minSalary = 4000.0
	maxSalary = 35000.0

	openToWorkProbability = 0.7
	remoteOnlyProbability = 0.5
)

// Synthesizer builds random profile documents. It is not safe for
// concurrent use because *rand.Rand is not.
type Synthesizer struct {
	vocab      vocab.Provider
	rng        *rand.Rand
	now        func() time.Time
	experience DateWindow
	education  DateWindow
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClock overrides the time source used as "now" for date ranges.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// WithDateWindows overrides the experience and education date windows.
func WithDateWindows(experience, education DateWindow) Option {
	return func(s *Synthesizer) {
		s.experience = experience
		s.education = education
	}
}

// NewSynthesizer creates a synthesizer drawing words from p and randomness from r.
func NewSynthesizer(p vocab.Provider, r *rand.Rand, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		vocab:      p,
		rng:        r,
		now:        time.Now,
		experience: DefaultDateWindow,
		education:  EducationDateWindow,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewSource returns a PCG generator seeded from crypto/rand.
func NewSource() *rand.Rand {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Synthesize produces a complete document for the identity at index.
func (s *Synthesizer) Synthesize(index int) *Document {
	now := s.now()
	handle := identity.Handle(index)

	return &Document{
		Headline:          s.sample(vocab.Headline),
		Bio:               s.sample(vocab.Bio),
		Seniority:         pick(s.rng, Seniorities),
		YearsOfExperience: intBetween(s.rng, minYears, maxYears),
		OpenToWork:        s.chance(openToWorkProbability),
		SalaryExpectation: s.salary(),
		Currency:          pick(s.rng, Currencies),
		ContractType:      pick(s.rng, ContractTypes),
		Location:          pick(s.rng, Locations),
		RemoteOnly:        s.chance(remoteOnlyProbability),
		Skills:            s.skills(minSkills, maxSkills),
		SocialLinks: SocialLinks{
			LinkedIn: "https://www.linkedin.com/in/" + handle,
			GitHub:   "https://github.com/" + handle,
			Website:  "https://" + handle + ".dev",
		},
		Experiences: s.experiences(now),
		Projects:    s.projects(),
		Educations:  s.educations(now),
	}
}

func (s *Synthesizer) experiences(now time.Time) []Experience {
	out := make([]Experience, intBetween(s.rng, minExperiences, maxExperiences))
	for i := range out {
		start, end := DateRange(s.rng, now, s.experience)
		out[i] = Experience{
			Company:     s.sample(vocab.CompanyPrefix) + " " + s.sample(vocab.CompanySuffix),
			Role:        s.sample(vocab.Role),
			StartDate:   start,
			EndDate:     end,
			Description: s.sample(vocab.ExperienceDescription),
			TechStack:   s.skills(minTechStack, maxTechStack),
		}
	}
	return out
}

func (s *Synthesizer) projects() []Project {
	out := make([]Project, intBetween(s.rng, minProjects, maxProjects))
	for i := range out {
		name := "Project " + s.sample(vocab.ProjectName)
		slug := strings.ToLower(name)
		out[i] = Project{
			Name:        name,
			Description: s.sample(vocab.ProjectDescription),
			RepoURL:     "https://github.com/seed/" + strings.ReplaceAll(slug, " ", "-"),
			LiveURL:     "https://" + strings.ReplaceAll(slug, " ", "") + ".example.com",
			Tags:        s.skills(minTags, maxTags),
		}
	}
	return out
}

func (s *Synthesizer) educations(now time.Time) []Education {
	out := make([]Education, intBetween(s.rng, minEducations, maxEducations))
	for i := range out {
		start, end := DateRange(s.rng, now, s.education)
		out[i] = Education{
			Institution: s.sample(vocab.Institution),
			Degree:      s.sample(vocab.Degree),
			Field:       s.sample(vocab.Field),
			StartDate:   start,
			EndDate:     end,
		}
	}
	return out
}

func (s *Synthesizer) skills(minItems, maxItems int) []string {
	return Subset(s.rng, s.vocab.Pool(vocab.Skill), minItems, maxItems)
}

// salary is uniform in [minSalary, maxSalary), rounded to cents.
func (s *Synthesizer) salary() float64 {
	v := minSalary + s.rng.Float64()*(maxSalary-minSalary)
	return math.Round(v*100) / 100
}

func (s *Synthesizer) chance(p float64) bool {
	return s.rng.Float64() < p
}

func (s *Synthesizer) sample(c vocab.Category) string {
	return s.vocab.Sample(s.rng, c)
}
