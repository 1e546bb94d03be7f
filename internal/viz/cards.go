package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/config"
)

// hyperlink wraps text in an OSC 8 escape so supporting terminals make it
// clickable.
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// resolveLink turns a site-relative link into an absolute URL.
func resolveLink(base, link string) string {
	if strings.HasPrefix(link, "/") && base != "" {
		return strings.TrimRight(base, "/") + link
	}
	return link
}

// ProjectCard renders one project as a bordered card whose title and link
// line are hyperlinks.
func ProjectCard(p config.Project, baseURL string, width int, s *Styles) string {
	url := resolveLink(baseURL, p.Link)
	title := p.Title
	if p.External {
		title += " ↗"
	}
	inner := width - 6
	if inner < 10 {
		inner = 10
	}
	parts := []string{
		s.CardTitle.Render(hyperlink(url, title)),
		s.Muted.Width(inner).Render(p.Description),
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = s.Tag.Render(t)
		}
		parts = append(parts, "", strings.Join(tags, " "))
	}
	parts = append(parts, s.FooterLink.Render(hyperlink(url, url)))
	return s.Card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// ProjectGrid stacks cards in a single column.
func ProjectGrid(projects []config.Project, baseURL string, width int, s *Styles) string {
	if len(projects) == 0 {
		return ""
	}
	cards := make([]string, len(projects))
	for i, p := range projects {
		cards[i] = ProjectCard(p, baseURL, width, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Footer renders the social links centered on one line.
func Footer(links []config.SocialLink, width int, s *Styles) string {
	parts := make([]string, len(links))
	for i, l := range links {
		parts[i] = s.FooterLink.Render(hyperlink(l.URL, l.Label))
	}
	line := strings.Join(parts, s.Muted.Render("  ·  "))
	return s.Footer.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
}
