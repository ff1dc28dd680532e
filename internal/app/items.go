package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedItemsFile is returned for items files that are neither YAML
// nor TOML.
var ErrUnsupportedItemsFile = errors.New("unsupported items file")

// ListSpec overrides the title and options of one listbox.
type ListSpec struct {
	Title string   `yaml:"title" toml:"title"`
	Items []string `yaml:"items" toml:"items"`
}

// ItemsFile replaces the sample data of the demo listboxes.
type ItemsFile struct {
	Left  ListSpec `yaml:"left" toml:"left"`
	Right ListSpec `yaml:"right" toml:"right"`
}

// ItemsFileFormat returns "yaml" or "toml" based on the file extension, or ""
// when the extension is not recognised.
func ItemsFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

// LoadItemsFile reads and decodes an items file.
func LoadItemsFile(path string) (ItemsFile, error) {
	var file ItemsFile
	format := ItemsFileFormat(path)
	if format == "" {
		return file, fmt.Errorf("%w: %s", ErrUnsupportedItemsFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read items file: %w", err)
	}
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &file)
	case "toml":
		err = toml.Unmarshal(data, &file)
	}
	if err != nil {
		return file, fmt.Errorf("decode %s items file %s: %w", format, path, err)
	}
	return file, nil
}

// apply overrides title and labels where the file provides them. A missing
// items key keeps the defaults; an explicit empty list empties the listbox.
func (s ListSpec) apply(title string, labels []string) (string, []string) {
	if strings.TrimSpace(s.Title) != "" {
		title = s.Title
	}
	if s.Items != nil {
		labels = s.Items
	}
	return title, labels
}
