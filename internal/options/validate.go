// Package options provides shared utilities for functional-option validation.
package options

import "github.com/sonatype-nexus-community/iqspec/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the group of options in the returned *oaserrors.ConfigError;
// sources reports whether each alternative was set.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: option, Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: option, Message: multiSourceMsg}
	}

	return nil
}

// RequireNonEmpty returns a *oaserrors.ConfigError when value is empty.
func RequireNonEmpty(option, value string) error {
	if value == "" {
		return &oaserrors.ConfigError{Option: option, Message: "cannot be empty"}
	}
	return nil
}
