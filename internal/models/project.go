package models

// Project represents a portfolio project
type Project struct {
	Slug        string   `json:"slug" yaml:"slug,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Image       string   `json:"image" yaml:"image"`
	Year        string   `json:"year" yaml:"year"`
	Approach    string   `json:"approach" yaml:"approach"`
	Role        string   `json:"role" yaml:"role"`
	Timeline    string   `json:"timeline" yaml:"timeline"`
	Outcome     string   `json:"outcome" yaml:"outcome"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
