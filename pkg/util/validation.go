package util

import (
	"regexp"

	"github.com/pkg/errors"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	columnRefPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// ValidIdentifier rejects table names that could smuggle SQL into the
// generated statement. Identifiers are not bound as parameters, so they
// are gated here instead.
func ValidIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return errors.Errorf("invalid identifier %q", name)
	}
	return nil
}

// ValidColumnRef accepts a bare column name or a qualified table.column
// reference.
func ValidColumnRef(ref string) error {
	if !columnRefPattern.MatchString(ref) {
		return errors.Errorf("invalid column reference %q", ref)
	}
	return nil
}
