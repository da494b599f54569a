package config

import (
	"fmt"
	"strings"
)

// InvalidProviderSelectionError reports a provider-selection field holding a
// value outside its allowed set.
type InvalidProviderSelectionError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidProviderSelectionError) Error() string {
	return fmt.Sprintf("invalid %s provider %q: must be one of [%s]",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// MissingCredentialError reports an absent or empty credential that the
// currently selected provider requires.
type MissingCredentialError struct {
	Credential string
	Provider   string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s is required for %s", e.Credential, e.Provider)
}
