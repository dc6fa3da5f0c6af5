package domain_test

import (
	"testing"

	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestDefaultReportConfig(t *testing.T) {
	cfg := domain.DefaultReportConfig()
	assert.True(t, cfg.ReportCoordinates)
	assert.True(t, cfg.CentralLinks)
	assert.True(t, cfg.IncludeParent)
	assert.False(t, cfg.SkipEmpty)
	assert.True(t, cfg.Reactor)
	assert.Equal(t, "http://search.maven.org/", cfg.IndexURL)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.NoError(t, cfg.Validate())
}

func TestReportConfig_LinkCoordinates(t *testing.T) {
	cfg := domain.DefaultReportConfig()
	assert.True(t, cfg.LinkCoordinates())

	cfg.ReportCoordinates = false
	assert.False(t, cfg.LinkCoordinates(), "links are only respected with coordinates")

	cfg.ReportCoordinates = true
	cfg.CentralLinks = false
	assert.False(t, cfg.LinkCoordinates())
}

func TestReportConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ReportConfig)
		wantErr string
	}{
		{"blank locale", func(c *domain.ReportConfig) { c.Locale = "  " }, "locale must not be empty"},
		{"empty index", func(c *domain.ReportConfig) { c.IndexURL = "" }, "index_url must not be empty"},
		{"ftp index", func(c *domain.ReportConfig) { c.IndexURL = "ftp://example.com/" }, "http or https"},
		{"relative index", func(c *domain.ReportConfig) { c.IndexURL = "search/" }, "http or https"},
		{"bad index", func(c *domain.ReportConfig) { c.IndexURL = "http://[::1" }, "index_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultReportConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigOverrides_ApplyOnlySpecified(t *testing.T) {
	o := domain.ConfigOverrides{
		Modules: domain.ModulesOverrides{
			CentralLinks: boolPtr(false),
			SkipEmpty:    boolPtr(true),
		},
		Locale: strPtr("fr"),
	}

	cfg := o.Apply(domain.DefaultReportConfig())
	assert.True(t, cfg.ReportCoordinates, "unspecified toggles keep their value")
	assert.False(t, cfg.CentralLinks)
	assert.True(t, cfg.IncludeParent)
	assert.True(t, cfg.SkipEmpty)
	assert.True(t, cfg.Reactor)
	assert.Equal(t, domain.DefaultIndexURL, cfg.IndexURL)
	assert.Equal(t, "fr", cfg.Locale)
}

func TestConfigOverrides_ZeroValueChangesNothing(t *testing.T) {
	cfg := domain.ConfigOverrides{}.Apply(domain.DefaultReportConfig())
	assert.Equal(t, domain.DefaultReportConfig(), cfg)
}
