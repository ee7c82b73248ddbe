// Package content holds the compiled-in site data: quotes, the garden layout
// and the static page copy. Everything is embedded YAML read once at startup.
package content

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	QuotesFile = "data/quotes.yaml"
	SceneFile  = "data/scene.yaml"
	PagesFile  = "data/pages.yaml"
)

// ReadFile returns the raw bytes of an embedded data file.
func ReadFile(path string) ([]byte, error) {
	data, err := fs.ReadFile(dataFS, path)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", path, err)
	}
	return data, nil
}

// ObjectRecord is one decorative object as written in scene.yaml.
// Phase is in multiples of pi.
type ObjectRecord struct {
	Kind   string     `yaml:"kind"`
	Radius float64    `yaml:"radius"`
	Speed  float64    `yaml:"speed"`
	Phase  float64    `yaml:"phase"`
	Base   [3]float64 `yaml:"base"`
}

type PetalRecord struct {
	At    [3]float64 `yaml:"at"`
	Color string     `yaml:"color"`
}

type SceneLayout struct {
	Objects []ObjectRecord `yaml:"objects"`
	Stones  [][3]float64   `yaml:"stones"`
	Petals  []PetalRecord  `yaml:"petals"`
}

type GalleryItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

type Principle struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ContactMethod struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
}

type Header struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type Pages struct {
	Home struct {
		Header `yaml:",inline"`
		Hint   string `yaml:"hint"`
	} `yaml:"home"`
	Gallery struct {
		Header `yaml:",inline"`
		Items  []GalleryItem `yaml:"items"`
	} `yaml:"gallery"`
	Meditation struct {
		Header `yaml:",inline"`
		Tips   []string `yaml:"tips"`
	} `yaml:"meditation"`
	About struct {
		Header     `yaml:",inline"`
		Mission    []string    `yaml:"mission"`
		Principles []Principle `yaml:"principles"`
		Closing    struct {
			Text   string `yaml:"text"`
			Author string `yaml:"author"`
		} `yaml:"closing"`
	} `yaml:"about"`
	Contact struct {
		Header  `yaml:",inline"`
		Intro   string          `yaml:"intro"`
		Methods []ContactMethod `yaml:"methods"`
	} `yaml:"contact"`
}

// LoadScene decodes the embedded garden layout.
func LoadScene() (*SceneLayout, error) {
	var layout SceneLayout
	if err := decode(SceneFile, &layout); err != nil {
		return nil, err
	}
	if len(layout.Objects) == 0 {
		return nil, fmt.Errorf("%s: no decorative objects", SceneFile)
	}
	return &layout, nil
}

// LoadPages decodes the embedded page copy.
func LoadPages() (*Pages, error) {
	var pages Pages
	if err := decode(PagesFile, &pages); err != nil {
		return nil, err
	}
	return &pages, nil
}

func decode(path string, out any) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
