package profile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML shape of a reference-data file:
//
//	profile: |
//	  NAME: ...
//	renewals:
//	  - name: Car Insurance
//	    date: 2024-12-01
//	    notes: Call Geico
type fileSchema struct {
	Profile  string          `yaml:"profile"`
	Renewals []renewalSchema `yaml:"renewals"`
}

type renewalSchema struct {
	Name  string `yaml:"name"`
	Date  string `yaml:"date"`
	Notes string `yaml:"notes"`
}

// Load reads reference data from a YAML file. Reference data is loaded once
// at process start; a load failure here is the only fatal error in the
// system.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML reference data into a Store.
func Parse(raw []byte) (*Store, error) {
	var f fileSchema
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	if f.Profile == "" {
		return nil, fmt.Errorf("reference data has no profile block")
	}
	renewals := make([]Renewal, 0, len(f.Renewals))
	for _, r := range f.Renewals {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("renewal %q: invalid date %q: %w", r.Name, r.Date, err)
		}
		renewals = append(renewals, Renewal{Name: r.Name, Date: date, Notes: r.Notes})
	}
	return New(f.Profile, renewals), nil
}
