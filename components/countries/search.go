package countries

import (
	"sort"
	"strings"
)

// Choice is the JSON shape returned to typeahead inputs.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search returns countries whose name contains query, or whose code equals
// it, case-insensitively. Exact code and name-prefix matches sort first. A
// limit of zero or less returns every match. A blank query matches nothing
// unless listAll is set.
func Search(list []Country, query string, limit int, listAll bool) []Country {
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if !listAll || limit == 0 {
			return nil
		}
		return append([]Country(nil), list[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedCountry, 0, 32)
	for _, country := range list {
		lowerName := strings.ToLower(country.Name)
		codeMatch := strings.EqualFold(country.Code, query)
		if !codeMatch && !strings.Contains(lowerName, q) {
			continue
		}
		rank := 2
		switch {
		case codeMatch:
			rank = 0
		case strings.HasPrefix(lowerName, q):
			rank = 1
		}
		matches = append(matches, matchedCountry{country: country, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].country.Name < matches[j].country.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Country, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.country)
	}
	return out
}

// SearchOptions runs Search and maps the results to name/name options, the
// value convention country selects submit.
func SearchOptions(list []Country, query string, limit int, listAll bool) []Choice {
	results := Search(list, query, limit, listAll)
	if len(results) == 0 {
		return nil
	}

	out := make([]Choice, 0, len(results))
	for _, country := range results {
		out = append(out, Choice{Value: country.Name, Label: country.Name})
	}
	return out
}

type matchedCountry struct {
	country Country
	rank    int
}
