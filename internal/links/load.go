package links

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape. A bare list is accepted as well.
type document struct {
	Links []Link `yaml:"links"`
}

// Load reads and validates a YAML link tree from path.
func Load(path string) ([]Link, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links: %w", err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes a YAML link tree. Links without an id are assigned one.
func Parse(data []byte) ([]Link, error) {
	var list []Link
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "-") {
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	} else {
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		list = doc.Links
	}
	assignIDs(list)
	if err := Validate(list); err != nil {
		return nil, err
	}
	return list, nil
}

func assignIDs(list []Link) {
	for i := range list {
		if strings.TrimSpace(list[i].ID) == "" {
			list[i].ID = uuid.NewString()
		}
		assignIDs(list[i].Sublinks)
	}
}
