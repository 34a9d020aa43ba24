// Package profile synthesizes random portfolio documents for seeded users.
//
// Synthesis is pure: all randomness comes from the *rand.Rand handed to the
// Synthesizer and all vocabulary from its vocab.Provider, so tests can pin
// both.
package profile

// Seniority is the candidate's career level.
type Seniority string

const (
	Junior    Seniority = "JUNIOR"
	MidLevel  Seniority = "MID_LEVEL"
	Senior    Seniority = "SENIOR"
	Lead      Seniority = "LEAD"
	Principal Seniority = "PRINCIPAL"
	Staff     Seniority = "STAFF"
)

// Location is the preferred work arrangement.
type Location string

const (
	OnSite Location = "ON_SITE"
	Remote Location = "REMOTE"
	Hybrid Location = "HYBRID"
	Any    Location = "ANY"
)

// ContractType is the preferred hiring regime.
type ContractType string

const (
	PJ         ContractType = "PJ"
	CLT        ContractType = "CLT"
	Freelancer ContractType = "FREELANCER"
	Contractor ContractType = "CONTRACTOR"
)

// Currency of the salary expectation.
type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// option sets drawn from uniformly
var (
	Seniorities   = []Seniority{Junior, MidLevel, Senior, Lead, Principal, Staff}
	Locations     = []Location{OnSite, Remote, Hybrid, Any}
	ContractTypes = []ContractType{PJ, CLT, Freelancer, Contractor}
	Currencies    = []Currency{BRL, USD, EUR, GBP}
)

// Document is the payload posted to the portfolio endpoint.
type Document struct {
	Headline          string       `json:"headline"`
	Bio               string       `json:"bio"`
	Seniority         Seniority    `json:"seniority"`
	YearsOfExperience int          `json:"years_of_experience"`
	OpenToWork        bool         `json:"open_to_work"`
	SalaryExpectation float64      `json:"salary_expectation"`
	Currency          Currency     `json:"currency"`
	ContractType      ContractType `json:"contract_type"`
	Location          Location     `json:"location"`
	RemoteOnly        bool         `json:"remote_only"`
	Skills            []string     `json:"skills"`
	SocialLinks       SocialLinks  `json:"social_links"`
	Experiences       []Experience `json:"experiences"`
	Projects          []Project    `json:"projects"`
	Educations        []Education  `json:"educations"`
}

// SocialLinks keys profile URLs by platform.
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// Experience is one job. A nil EndDate means the job is current.
type Experience struct {
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	StartDate   Timestamp  `json:"startDate"`
	EndDate     *Timestamp `json:"endDate"`
	Description string     `json:"description"`
	TechStack   []string   `json:"techStack"`
}

// Project is a showcased piece of work.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repoUrl"`
	LiveURL     string   `json:"liveUrl"`
	Tags        []string `json:"tags"`
}

// Education is one degree. A nil EndDate means it is in progress.
type Education struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   Timestamp  `json:"startDate"`
	EndDate     *Timestamp `json:"endDate"`
}
