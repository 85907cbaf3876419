package types

// Education is a single education entry on a resume.
type Education struct {
	Institution string `json:"institution" mapstructure:"institution"`
	Degree      string `json:"degree,omitempty" mapstructure:"degree"`
	Field       string `json:"field,omitempty" mapstructure:"field"`
	StartDate   string `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate     string `json:"end_date,omitempty" mapstructure:"end_date"`
	GPA         string `json:"gpa,omitempty" mapstructure:"gpa"`
}

// Experience is a single work experience entry on a resume.
type Experience struct {
	Title        string   `json:"title" mapstructure:"title"`
	Company      string   `json:"company,omitempty" mapstructure:"company"`
	StartDate    string   `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate      string   `json:"end_date,omitempty" mapstructure:"end_date"`
	Bullets      []string `json:"bullets" mapstructure:"bullets"`
	Technologies []string `json:"technologies" mapstructure:"technologies"`
}

// Project is a personal or professional project entry on a resume.
type Project struct {
	Name         string   `json:"name" mapstructure:"name"`
	Description  string   `json:"description,omitempty" mapstructure:"description"`
	Bullets      []string `json:"bullets" mapstructure:"bullets"`
	Technologies []string `json:"technologies" mapstructure:"technologies"`
	Link         string   `json:"link,omitempty" mapstructure:"link"`
}

// Resume is the structured form of a candidate resume as extracted by the
// generative backend. All fields are best-effort; an empty Resume is valid.
type Resume struct {
	Name     string `json:"name,omitempty" mapstructure:"name"`
	Email    string `json:"email,omitempty" mapstructure:"email"`
	Phone    string `json:"phone,omitempty" mapstructure:"phone"`
	Location string `json:"location,omitempty" mapstructure:"location"`
	LinkedIn string `json:"linkedin,omitempty" mapstructure:"linkedin"`
	GitHub   string `json:"github,omitempty" mapstructure:"github"`
	Website  string `json:"website,omitempty" mapstructure:"website"`

	Summary        string       `json:"summary,omitempty" mapstructure:"summary"`
	Skills         []string     `json:"skills" mapstructure:"skills"`
	Education      []Education  `json:"education" mapstructure:"education"`
	Experience     []Experience `json:"experience" mapstructure:"experience"`
	Projects       []Project    `json:"projects" mapstructure:"projects"`
	Certifications []string     `json:"certifications" mapstructure:"certifications"`
	Awards         []string     `json:"awards" mapstructure:"awards"`
	Publications   []string     `json:"publications" mapstructure:"publications"`
}

// TailoringOptions controls the single-resume tailoring flow.
type TailoringOptions struct {
	TargetSeniority string `json:"target_seniority,omitempty"`
	TargetRole      string `json:"target_role,omitempty"`
	Tone            string `json:"tone,omitempty"`   // concise, confident, impact-focused
	Length          string `json:"length,omitempty"` // 1page or 2pages
}

// DefaultTailoringOptions returns the defaults used when the caller supplies
// no options.
func DefaultTailoringOptions() TailoringOptions {
	return TailoringOptions{
		Tone:   "concise",
		Length: "1page",
	}
}
