package countries

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed data/iso3166.tab
var dataFS embed.FS

const defaultListPath = "data/iso3166.tab"

// Country is one ISO 3166-1 entry.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	defaultOnce      sync.Once
	defaultCountries []Country
	defaultErr       error
)

// DefaultCountries returns a copy of the embedded list, sorted by name.
func DefaultCountries() ([]Country, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		list, err := LoadCountries(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCountries = list
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Country{}, defaultCountries...), nil
}

// Names returns the country names in list order.
func Names(list []Country) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

// LoadCountries parses "CODE<TAB>Name" lines. Blank lines and # comments are
// skipped, duplicate codes keep their first entry, and the result is sorted
// by name.
func LoadCountries(r io.Reader) ([]Country, error) {
	if r == nil {
		return nil, fmt.Errorf("countries: missing reader")
	}

	scanner := bufio.NewScanner(r)
	list := make([]Country, 0, 256)
	seen := map[string]struct{}{}

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		code, name, ok := strings.Cut(text, "\t")
		code = strings.ToUpper(strings.TrimSpace(code))
		name = strings.TrimSpace(name)
		if !ok || code == "" || name == "" {
			return nil, fmt.Errorf("countries: line %d: expected CODE<TAB>Name", line)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		list = append(list, Country{Code: code, Name: name})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list, nil
}
