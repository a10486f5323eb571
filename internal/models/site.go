package models

// Site is the complete hand-authored content of the page
type Site struct {
	Owner    Owner     `json:"owner" yaml:"owner"`
	Hero     Hero      `json:"hero" yaml:"hero"`
	About    About     `json:"about" yaml:"about"`
	Contact  Contact   `json:"contact" yaml:"contact"`
	Nav      []Link    `json:"nav" yaml:"nav"`
	Footer   Footer    `json:"footer" yaml:"footer"`
	Projects []Project `json:"projects" yaml:"projects"`
}

// Owner identifies the designer the site belongs to
type Owner struct {
	Name     string `json:"name" yaml:"name"`
	Headline string `json:"headline" yaml:"headline"`
}

// Hero holds the banner copy
type Hero struct {
	Eyebrow  string `json:"eyebrow" yaml:"eyebrow"`
	Headline string `json:"headline" yaml:"headline"`
	Intro    string `json:"intro" yaml:"intro"`
}

// About holds the biography section
type About struct {
	Portrait    string       `json:"portrait" yaml:"portrait"`
	PortraitAlt string       `json:"portrait_alt" yaml:"portrait_alt"`
	Lead        string       `json:"lead" yaml:"lead"`
	Body        string       `json:"body" yaml:"body"`
	Experience  []Experience `json:"experience" yaml:"experience"`
}

// Experience is a single entry of the career timeline
type Experience struct {
	Period      string `json:"period" yaml:"period"`
	Role        string `json:"role" yaml:"role"`
	Description string `json:"description" yaml:"description"`
}

// Contact holds the contact section
type Contact struct {
	Heading string       `json:"heading" yaml:"heading"`
	Email   string       `json:"email" yaml:"email"`
	Links   []SocialLink `json:"links" yaml:"links"`
}

// MailTo returns the mailto href for the contact email
func (c Contact) MailTo() string {
	return "mailto:" + c.Email
}

// SocialLink is a labelled outbound link such as LinkedIn
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Value string `json:"value" yaml:"value"`
}

// Link is a plain navigation link
type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Footer holds the footer copy
type Footer struct {
	Year  int    `json:"year" yaml:"year"`
	Links []Link `json:"links" yaml:"links"`
}
