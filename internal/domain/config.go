package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultIndexURL is the public package search service the coordinate links point at.
const DefaultIndexURL = "http://search.maven.org/"

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "en-US"

// ReportConfig holds the effective settings for one modules report run.
type ReportConfig struct {
	// ReportCoordinates adds the groupId, artifactId, version and packaging columns.
	ReportCoordinates bool `json:"report_coordinates"`
	// CentralLinks links each coordinate to the package index. Only respected when
	// ReportCoordinates is set.
	CentralLinks bool `json:"central_links"`
	// IncludeParent appends a row for the multi-module parent itself.
	IncludeParent bool `json:"include_parent"`
	// SkipEmpty suppresses the report for projects without modules.
	SkipEmpty bool `json:"skip_empty"`
	// Reactor builds the in-memory sibling project set before rendering.
	Reactor bool `json:"reactor"`

	IndexURL string `json:"index_url"`
	Locale   string `json:"locale"`
}

// DefaultReportConfig returns the documented defaults.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		ReportCoordinates: true,
		CentralLinks:      true,
		IncludeParent:     true,
		SkipEmpty:         false,
		Reactor:           true,
		IndexURL:          DefaultIndexURL,
		Locale:            DefaultLocale,
	}
}

// LinkCoordinates reports whether coordinate cells are rendered as index links.
func (c ReportConfig) LinkCoordinates() bool {
	return c.ReportCoordinates && c.CentralLinks
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ReportConfig) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("locale must not be empty")
	}
	if c.IndexURL == "" {
		return fmt.Errorf("index_url must not be empty")
	}
	u, err := url.Parse(c.IndexURL)
	if err != nil {
		return fmt.Errorf("index_url %q: %w", c.IndexURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("index_url %q must be an http or https URL", c.IndexURL)
	}
	return nil
}

// ConfigOverrides carries partial settings from a config file, the environment or
// command-line flags. Pointer types distinguish "not specified" from zero values.
type ConfigOverrides struct {
	Modules  ModulesOverrides `yaml:"modules"   json:"modules,omitempty"`
	IndexURL *string          `yaml:"index_url" json:"index_url,omitempty"`
	Locale   *string          `yaml:"locale"    json:"locale,omitempty"`
}

// ModulesOverrides are the modules report toggles.
type ModulesOverrides struct {
	ReportCoordinates *bool `yaml:"report_coordinates" json:"report_coordinates,omitempty"`
	CentralLinks      *bool `yaml:"central_links"      json:"central_links,omitempty"`
	IncludeParent     *bool `yaml:"include_parent"     json:"include_parent,omitempty"`
	SkipEmpty         *bool `yaml:"skip_empty"         json:"skip_empty,omitempty"`
	Reactor           *bool `yaml:"reactor"            json:"reactor,omitempty"`
}

// Apply overlays every specified override onto c and returns the result.
func (o ConfigOverrides) Apply(c ReportConfig) ReportConfig {
	setBool(&c.ReportCoordinates, o.Modules.ReportCoordinates)
	setBool(&c.CentralLinks, o.Modules.CentralLinks)
	setBool(&c.IncludeParent, o.Modules.IncludeParent)
	setBool(&c.SkipEmpty, o.Modules.SkipEmpty)
	setBool(&c.Reactor, o.Modules.Reactor)
	if o.IndexURL != nil {
		c.IndexURL = *o.IndexURL
	}
	if o.Locale != nil {
		c.Locale = *o.Locale
	}
	return c
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
