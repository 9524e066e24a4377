package slack

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Policy collects the request constants the platform could change out
// from under us: the API base URL, the per-request timeout, and the
// clamp/default values for paging-style parameters.
type Policy struct {
	BaseURL            string
	Timeout            time.Duration
	HistoryDefault     int
	HistoryMin         int
	HistoryMax         int
	SearchDefaultCount int
}

// DefaultPolicy returns the platform's documented limits.
func DefaultPolicy() Policy {
	return Policy{
		BaseURL:            "https://slack.com/api",
		Timeout:            30 * time.Second,
		HistoryDefault:     10,
		HistoryMin:         1,
		HistoryMax:         100,
		SearchDefaultCount: 20,
	}
}

// policyFile is the YAML shape of a policy override file. Pointer
// fields distinguish "absent" from "zero" so partial files work.
type policyFile struct {
	BaseURL            string `yaml:"base_url"`
	Timeout            string `yaml:"timeout"`
	HistoryDefault     *int   `yaml:"history_default"`
	HistoryMin         *int   `yaml:"history_min"`
	HistoryMax         *int   `yaml:"history_max"`
	SearchDefaultCount *int   `yaml:"search_default_count"`
}

// LoadPolicy reads a YAML policy file over the defaults; fields absent
// from the file keep their default values. Timeout is a Go duration
// string such as "30s".
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("failed to read policy file: %w", err)
	}
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return policy, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}
	if file.BaseURL != "" {
		policy.BaseURL = file.BaseURL
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return policy, fmt.Errorf("invalid timeout in policy file %s: %w", path, err)
		}
		policy.Timeout = timeout
	}
	if file.HistoryDefault != nil {
		policy.HistoryDefault = *file.HistoryDefault
	}
	if file.HistoryMin != nil {
		policy.HistoryMin = *file.HistoryMin
	}
	if file.HistoryMax != nil {
		policy.HistoryMax = *file.HistoryMax
	}
	if file.SearchDefaultCount != nil {
		policy.SearchDefaultCount = *file.SearchDefaultCount
	}
	return policy, nil
}

// clampHistoryLimit forces a history page size into the allowed range.
func (p Policy) clampHistoryLimit(limit int) int {
	if limit < p.HistoryMin {
		return p.HistoryMin
	}
	if limit > p.HistoryMax {
		return p.HistoryMax
	}
	return limit
}
