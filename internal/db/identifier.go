package db

import (
	"strings"

	"github.com/cso-genova/casa-listing-explorer/internal"
)

// NormalizeDatabaseName accepts either a plain MotherDuck database name
// ("analytics") or a full md: uri ("md:analytics") and returns the uri form.
func NormalizeDatabaseName(database string) (string, error) {
	database = strings.TrimSpace(database)
	if database == "" {
		return "", internal.NewConfigError("a MotherDuck database name is required")
	}

	if strings.HasPrefix(database, "md:") {
		return database, nil
	}

	return "md:" + database, nil
}

// QuoteIdentifier quotes every segment of a dotted identifier so it is
// safe to interpolate into a query. Empty segments are dropped, existing
// quotes are stripped before re-quoting.
func QuoteIdentifier(identifier string) (string, error) {
	parts := make([]string, 0, 3)
	for _, part := range strings.Split(identifier, ".") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part == "" {
			continue
		}

		parts = append(parts, `"`+part+`"`)
	}

	if len(parts) == 0 {
		return "", internal.NewConfigError("a table or view name is required")
	}

	return strings.Join(parts, "."), nil
}
