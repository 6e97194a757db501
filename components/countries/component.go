package countries

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// Component answers country searches for typeahead inputs bound to country
// selects. It is an http.Handler; the list is loaded once by New.
type Component struct {
	opts    Options
	list    []Country
	loadErr error
}

// New builds a Component serving the embedded list unless WithCountries is
// given.
func New(opts ...Option) *Component {
	o := newOptions(opts...)
	c := &Component{opts: o, list: o.Countries}
	if c.list == nil {
		c.list, c.loadErr = DefaultCountries()
	}
	return c
}

// Options returns the resolved configuration.
func (c *Component) Options() Options {
	return c.opts
}

// Countries returns a copy of the served list.
func (c *Component) Countries() []Country {
	return append([]Country(nil), c.list...)
}

// Mount registers the component at basePath joined with its route path and
// returns the registered pattern.
func (c *Component) Mount(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("countries: mount: mux is nil")
	}
	pattern := MountPath(basePath, c.opts.RoutePath)
	mux.Handle(pattern, c)
	return pattern, nil
}

type searchResponse struct {
	Data []Choice `json:"data"`
}

func (c *Component) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeStatus(w, http.StatusMethodNotAllowed)
		return
	}
	if c.opts.Guard != nil {
		if err := c.opts.Guard(r); err != nil {
			writeStatus(w, statusOf(err))
			return
		}
	}
	if c.loadErr != nil {
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	results := SearchOptions(c.list, query.Get(c.opts.SearchParam), c.opts.limit(query.Get(c.opts.LimitParam)), c.opts.ListAllOnEmpty)
	if results == nil {
		results = []Choice{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_ = json.NewEncoder(w).Encode(searchResponse{Data: results})
}

// Denied returns a guard error answered with status code.
func Denied(code int) error {
	return denial(code)
}

type denial int

func (d denial) Error() string   { return "countries: " + http.StatusText(int(d)) }
func (d denial) StatusCode() int { return int(d) }

func statusOf(err error) int {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) && coded.StatusCode() >= 400 {
		return coded.StatusCode()
	}
	return http.StatusForbidden
}

func writeStatus(w http.ResponseWriter, code int) {
	http.Error(w, http.StatusText(code), code)
}
