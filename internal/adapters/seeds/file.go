package seeds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Format is the encoding of a seed file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension, case-insensitively.
// .json is JSON; everything else, including .yaml and .yml, is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// fileDocument is the on-disk layout of a seed file.
type fileDocument struct {
	Recipes []fileRecipe `json:"recipes" yaml:"recipes"`
}

type fileRecipe struct {
	ID          string   `json:"id"          yaml:"id"`
	Title       string   `json:"title"       yaml:"title"`
	Category    string   `json:"category"    yaml:"category"`
	Difficulty  string   `json:"difficulty"  yaml:"difficulty"`
	Time        int      `json:"time"        yaml:"time"`
	Calories    int      `json:"calories"    yaml:"calories"`
	Rating      float64  `json:"rating"      yaml:"rating"`
	Image       string   `json:"image"       yaml:"image"`
	Tags        []string `json:"tags"        yaml:"tags"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Steps       []string `json:"steps"       yaml:"steps"`
}

func (r fileRecipe) toDomain() domain.Recipe {
	return domain.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Category:    domain.Category(r.Category),
		Difficulty:  domain.Difficulty(r.Difficulty),
		Time:        r.Time,
		Calories:    r.Calories,
		Rating:      r.Rating,
		Image:       r.Image,
		Tags:        r.Tags,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
	}
}

// File loads recipes from a YAML or JSON document with a top-level "recipes" list.
// Unknown fields are rejected so typos in hand-written seed files surface at startup.
type File struct {
	path   string
	format Format
}

var _ ports.SeedSource = (*File)(nil)

// NewFile creates a file source; the format follows the extension.
func NewFile(path string) *File {
	return &File{path: path, format: FormatFromPath(path)}
}

// Name implements ports.SeedSource.
func (f *File) Name() string {
	return "file:" + f.path
}

// Load reads and decodes the file. A missing file is reported as domain.ErrUnavailable.
func (f *File) Load(ctx context.Context) ([]domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Unavailable(f.Name(), "seed file does not exist")
		}

		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	doc, err := decode(fh, f.format)
	if err != nil {
		return nil, fmt.Errorf("decoding %s seed file %s: %w", f.format, f.path, err)
	}

	recipes := make([]domain.Recipe, 0, len(doc.Recipes))
	for _, r := range doc.Recipes {
		recipes = append(recipes, r.toDomain())
	}

	return recipes, nil
}

func decode(r io.Reader, format Format) (*fileDocument, error) {
	var doc fileDocument

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()

		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	return &doc, nil
}
