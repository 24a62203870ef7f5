package database

import (
	"fmt"
	"strings"
)

// ConstructDatabaseURL appends databaseName to baseURL, keeping any query
// parameters, and defaults sslmode to disable. An empty databaseName returns
// baseURL unchanged.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")
	databaseURL := baseURL + "/" + databaseName
	if base, query, found := strings.Cut(baseURL, "?"); found {
		databaseURL = fmt.Sprintf("%s/%s?%s", strings.TrimRight(base, "/"), databaseName, query)
	}

	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "&"
		if !strings.Contains(databaseURL, "?") {
			separator = "?"
		}
		databaseURL += separator + "sslmode=disable"
	}

	return databaseURL
}
