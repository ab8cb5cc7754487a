package config

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// Validate checks that the values an import cannot run without are set.
// Dry runs need only the organization ID. The 'rest' backend needs the
// service URL and key. The 'postgres' backend has usable defaults.
func (c *Config) Validate() error {
	var missing []string
	if c.Import.OrgID == "" {
		missing = append(missing, "import.org_id (ORG_ID)")
	}
	if !c.Import.DryRun {
		missing = append(missing, c.missingService()...)
	}

	if len(missing) == 0 {
		return nil
	}
	return MissingConfigError(missing)
}

// ValidateService checks only the settings needed to reach the backend.
func (c *Config) ValidateService() error {
	missing := c.missingService()
	if len(missing) == 0 {
		return nil
	}
	return MissingConfigError(missing)
}

func (c *Config) missingService() []string {
	var res []string
	if c.Import.Backend != "rest" {
		return res
	}
	if c.Service.URL == "" {
		res = append(res, "service.url (SUPABASE_URL)")
	}
	if c.Service.Key == "" {
		res = append(res, "service.key (SUPABASE_KEY)")
	}
	return res
}

// MissingConfigError is returned when required settings are absent.
func MissingConfigError(fields []string) error {
	msg := `Required settings are missing:
%s

Set them in the environment, in a .env file, in config.yaml,
or with command line flags.`
	lines := make([]string, len(fields))
	for i := range fields {
		lines[i] = "  * " + fields[i]
	}
	vars := []any{strings.Join(lines, "\n")}

	return &gn.Error{
		Code: errcode.MissingConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("missing configuration: %s",
			strings.Join(fields, ", ")),
	}
}
