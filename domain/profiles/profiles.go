// Package profiles holds the concrete domain configurations.
// Each deployment variant loads exactly one of them at startup.
package profiles

import (
	"fmt"
	"strings"

	"pharmabot/domain"
	pherrors "pharmabot/errors"
)

// ByName resolves a profile from its configuration name.
func ByName(name string) (domain.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pharma", "":
		return Pharma(), nil
	case "cv":
		return CV(), nil
	default:
		return domain.Profile{}, fmt.Errorf("%w: %q", pherrors.ErrUnknownProfile, name)
	}
}
