package countries

import (
	"net/http"
	"strings"
)

// Mux is satisfied by *http.ServeMux and chi routers.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath joins basePath and routePath into a single absolute path, e.g.
// ("admin", "api/countries") -> "/admin/api/countries".
func MountPath(basePath, routePath string) string {
	route := "/" + strings.Trim(strings.TrimSpace(routePath), "/")
	base := strings.Trim(strings.TrimSpace(basePath), "/")
	if base == "" {
		return route
	}
	return "/" + base + route
}
