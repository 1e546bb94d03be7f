package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fegerar/folio/internal/playback"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme   = "light"
	DefaultSpeed   = "1x"
	DefaultBaseURL = "https://federicogerardi.ovh"
)

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file extension")
	ErrInvalid           = errors.New("config: invalid")
)

type Config struct {
	Site     SiteConfig   `yaml:"site" toml:"site"`
	Intro    string       `yaml:"intro" toml:"intro"`
	Projects []Project    `yaml:"projects" toml:"projects"`
	Social   []SocialLink `yaml:"social" toml:"social"`
	// Widgets lists the visualizations shown on the page, in order.
	Widgets []string   `yaml:"widgets" toml:"widgets"`
	Theme   string     `yaml:"theme" toml:"theme"`
	Speed   string     `yaml:"speed" toml:"speed"`
	Head    HeadConfig `yaml:"head" toml:"head"`
}

type SiteConfig struct {
	Name          string `yaml:"name" toml:"name"`
	Handle        string `yaml:"handle" toml:"handle"`
	Title         string `yaml:"title" toml:"title"`
	TitleTemplate string `yaml:"title_template" toml:"title_template"`
	Description   string `yaml:"description" toml:"description"`
	BaseURL       string `yaml:"base_url" toml:"base_url"`
	Canonical     string `yaml:"canonical" toml:"canonical"`
	Lang          string `yaml:"lang" toml:"lang"`
}

type Project struct {
	Title       string   `yaml:"title" toml:"title"`
	Description string   `yaml:"description" toml:"description"`
	Link        string   `yaml:"link" toml:"link"`
	Image       string   `yaml:"image,omitempty" toml:"image,omitempty"`
	Tags        []string `yaml:"tags,omitempty" toml:"tags,omitempty"`
	External    bool     `yaml:"external,omitempty" toml:"external,omitempty"`
}

type SocialLink struct {
	Label string `yaml:"label" toml:"label"`
	URL   string `yaml:"url" toml:"url"`
}

// HeadConfig holds opaque markup and links injected into every page.
type HeadConfig struct {
	Fonts       []string `yaml:"fonts,omitempty" toml:"fonts,omitempty"`
	Stylesheets []string `yaml:"stylesheets,omitempty" toml:"stylesheets,omitempty"`
	Analytics   []string `yaml:"analytics,omitempty" toml:"analytics,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:          "Federico Gerardi",
			Handle:        "fegerar",
			Title:         "Federico Gerardi",
			TitleTemplate: "%s | Federico Gerardi",
			Description:   "Computer Scientist, Data Scientist, Systems Engineer",
			BaseURL:       DefaultBaseURL,
			Canonical:     "/",
			Lang:          "en",
		},
		Intro: "Computer scientist working across **data science** and **systems engineering**. " +
			"The widgets below replay how a few classic models learn to predict obesity from simple body measurements.",
		Projects: []Project{
			{
				Title:       "Obesity Prediction",
				Description: "Comparing a decision tree, linear and logistic regression and a small neural network on the same health dataset.",
				Link:        "/n/obesity-prediction",
				Tags:        []string{"Machine Learning", "Visualization"},
			},
			{
				Title:       "folio",
				Description: "This site, rendered both as a terminal page and as static HTML.",
				Link:        "https://github.com/fegerar/folio",
				Tags:        []string{"Go", "TUI"},
				External:    true,
			},
		},
		Social: []SocialLink{
			{Label: "X", URL: "https://x.com/f3gerar"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/federico-gerardi-81407a1a1/"},
			{Label: "GitHub", URL: "https://github.com/fegerar"},
		},
		Widgets: []string{"decision_tree", "linear_regression", "logistic_regression", "mlp"},
		Theme:   DefaultTheme,
		Speed:   DefaultSpeed,
		Head: HeadConfig{
			Fonts: []string{"https://fonts.googleapis.com/css2?family=Inter&display=swap"},
		},
	}
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads a YAML or TOML file over the defaults. The format is chosen by
// extension.
func Load(path string) (*Config, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatTOML:
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
			return err
		}
		data = []byte(b.String())
	default:
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Create writes the default config to path, refusing to overwrite.
func Create(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	return Save(path, DefaultConfig())
}

func (c *Config) Validate() error {
	if _, ok := Themes[c.Theme]; !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, ThemeNames())
	}
	if _, err := playback.ParseSpeed(c.Speed); err != nil {
		return fmt.Errorf("%w: speed %q: %w", ErrInvalid, c.Speed, err)
	}
	if c.Site.TitleTemplate != "" && !strings.Contains(c.Site.TitleTemplate, "%s") {
		return fmt.Errorf("%w: title_template must contain %%s", ErrInvalid)
	}
	for i, p := range c.Projects {
		if p.Title == "" || p.Link == "" {
			return fmt.Errorf("%w: project %d needs a title and a link", ErrInvalid, i)
		}
	}
	return nil
}

// PlaybackSpeed is the configured default speed, falling back to 1x.
func (c *Config) PlaybackSpeed() playback.Speed {
	s, err := playback.ParseSpeed(c.Speed)
	if err != nil {
		return playback.Normal
	}
	return s
}

// PageTitle applies the title template, or returns the bare site title for
// the home page.
func (c *Config) PageTitle(page string) string {
	if page == "" || c.Site.TitleTemplate == "" {
		if page != "" {
			return page
		}
		return c.Site.Title
	}
	return fmt.Sprintf(c.Site.TitleTemplate, page)
}

// CanonicalURL joins the base URL and the canonical path.
func (c *Config) CanonicalURL() string {
	base := strings.TrimRight(c.Site.BaseURL, "/")
	path := c.Site.Canonical
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
