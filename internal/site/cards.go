package site

import "github.com/fegerar/folio/internal/config"

// ProjectCard is a project summary rendered as a link card. Fields are not
// validated.
type ProjectCard struct {
	Title       string
	Description string
	Link        string
	Image       string
	Tags        []string
	// External cards open in a new tab without leaking the opener.
	External bool
}

func CardFromProject(p config.Project) ProjectCard {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProjectCard{
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		Image:       p.Image,
		Tags:        tags,
		External:    p.External,
	}
}

// ProjectGrid converts the configured projects in order.
func ProjectGrid(projects []config.Project) []ProjectCard {
	out := make([]ProjectCard, len(projects))
	for i, p := range projects {
		out[i] = CardFromProject(p)
	}
	return out
}
