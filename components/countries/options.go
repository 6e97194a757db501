package countries

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultRoutePath = "/api/countries"
	DefaultLimit     = 50
	MaxLimit         = 200
)

// Options configures a Component.
type Options struct {
	RoutePath   string
	SearchParam string
	LimitParam  string
	// DefaultLimit applies when the request carries no limit; MaxLimit caps
	// any requested limit.
	DefaultLimit int
	MaxLimit     int
	// ListAllOnEmpty answers a blank query with the head of the list instead
	// of an empty result.
	ListAllOnEmpty bool
	// Guard runs before the search. A non-nil error rejects the request; see
	// Denied for choosing the status.
	Guard func(r *http.Request) error
	// Countries replaces the embedded list.
	Countries []Country
}

// Option mutates Options during New.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	o := Options{
		RoutePath:    DefaultRoutePath,
		SearchParam:  "q",
		LimitParam:   "limit",
		DefaultLimit: DefaultLimit,
		MaxLimit:     MaxLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if strings.TrimSpace(o.RoutePath) == "" {
		o.RoutePath = DefaultRoutePath
	}
	if o.SearchParam == "" {
		o.SearchParam = "q"
	}
	if o.LimitParam == "" {
		o.LimitParam = "limit"
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = DefaultLimit
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = MaxLimit
	}
	return o
}

// WithRoutePath sets the path mounted under the base path.
func WithRoutePath(path string) Option {
	return func(o *Options) { o.RoutePath = path }
}

// WithParams renames the query and limit parameters.
func WithParams(search, limit string) Option {
	return func(o *Options) {
		o.SearchParam = strings.TrimSpace(search)
		o.LimitParam = strings.TrimSpace(limit)
	}
}

// WithLimits sets the default and maximum result counts.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(o *Options) {
		o.DefaultLimit = defaultLimit
		o.MaxLimit = maxLimit
	}
}

// WithListAllOnEmpty makes a blank query return the first countries.
func WithListAllOnEmpty() Option {
	return func(o *Options) { o.ListAllOnEmpty = true }
}

// WithGuard installs a request guard.
func WithGuard(guard func(r *http.Request) error) Option {
	return func(o *Options) { o.Guard = guard }
}

// WithCountries serves list instead of the embedded data.
func WithCountries(list []Country) Option {
	return func(o *Options) { o.Countries = append([]Country(nil), list...) }
}

// limit resolves the requested result count. Missing or malformed values use
// the default; anything above MaxLimit is capped.
func (o Options) limit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		limit = o.DefaultLimit
	}
	return min(limit, o.MaxLimit)
}
