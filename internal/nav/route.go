package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// HomeRoute is the start destination.
	HomeRoute = "home"
	// ResultRoutePattern is the result destination with its single string
	// argument.
	ResultRoutePattern = "resultContent/?listData={listData}"

	resultPath  = "resultContent/"
	listDataArg = "listData"
)

// ErrUnknownRoute is returned when a route does not name the result screen.
var ErrUnknownRoute = errors.New("unknown route")

// BuildResultRoute fills the result pattern with a query-escaped token.
func BuildResultRoute(token string) string {
	return strings.Replace(ResultRoutePattern, "{"+listDataArg+"}", url.QueryEscape(token), 1)
}

// ParseResultRoute returns the unescaped listData argument of a result route.
// A route without the argument yields an empty token.
func ParseResultRoute(route string) (string, error) {
	if !strings.HasPrefix(route, resultPath) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	u, err := url.Parse(route)
	if err != nil {
		return "", fmt.Errorf("parse route: %w", err)
	}
	if u.Path != resultPath {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", fmt.Errorf("parse route query: %w", err)
	}
	return q.Get(listDataArg), nil
}
