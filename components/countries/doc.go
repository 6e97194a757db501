// Package countries provides the ISO 3166 country list used by country
// select controls, search helpers, and a small net/http handler that returns
// JSON options for typeahead inputs.
//
// The handler responds to GET and HEAD requests and supports query and limit
// parameters. The backing data is the embedded data/iso3166.tab list.
package countries
