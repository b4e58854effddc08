// Package yaml loads site registries from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/headlines"
	"gopkg.in/yaml.v3"
)

// Registry is the top-level shape of a site registry file:
//
//	sites:
//	  - url: https://www.bbc.com/
//	    tag: h2
type Registry struct {
	Sites []headlines.Site `yaml:"sites"`
}

// LoadSites reads and validates the registry at path.
func LoadSites(path string) ([]headlines.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, headlines.Errorf(headlines.ENOTFOUND, "site registry %q not found", path)
		}
		return nil, err
	}
	defer f.Close()

	return ParseSites(f)
}

// ParseSites decodes and validates a registry. Unknown keys are rejected.
func ParseSites(r io.Reader) ([]headlines.Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var reg Registry
	if err := dec.Decode(&reg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, headlines.Errorf(headlines.EINVALID, "site registry is empty")
		}
		return nil, headlines.Errorf(headlines.EINVALID, "malformed site registry: %v", err)
	}

	if err := headlines.ValidateSites(reg.Sites); err != nil {
		return nil, err
	}
	return reg.Sites, nil
}
