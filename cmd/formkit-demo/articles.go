package main

import (
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"
)

const articleObject = "article"

var articleCategories = []string{"News", "Opinion", "Review"}

type article struct {
	Title     string
	Body      string
	Category  string
	Country   string
	Published bool
}

func (a article) values() map[string]any {
	published := "0"
	if a.Published {
		published = "1"
	}
	return map[string]any{
		"title":     a.Title,
		"body":      a.Body,
		"category":  a.Category,
		"country":   a.Country,
		"published": published,
	}
}

// articleFromForm reads the article[...] params. Check boxes submit the
// hidden unchecked value first, so the last value wins.
func articleFromForm(form url.Values) article {
	field := func(name string) string {
		values := form[articleObject+"["+name+"]"]
		if len(values) == 0 {
			return ""
		}
		return strings.TrimSpace(values[len(values)-1])
	}
	return article{
		Title:     field("title"),
		Body:      field("body"),
		Category:  field("category"),
		Country:   field("country"),
		Published: field("published") == "1",
	}
}

const minBodyLength = 10

// validate returns messages keyed by param path, the shape a host
// application's validator typically produces.
func (a article) validate() map[string][]string {
	out := map[string][]string{}
	add := func(field, msg string) {
		key := articleObject + "[" + field + "]"
		out[key] = append(out[key], msg)
	}
	if a.Title == "" {
		add("title", "can't be blank")
	}
	if a.Body == "" {
		add("body", "can't be blank")
	} else if utf8.RuneCountInString(a.Body) < minBodyLength {
		add("body", "is too short")
	}
	if a.Category != "" && !containsString(articleCategories, a.Category) {
		add("category", "is not included in the list")
	}
	return out
}

type articleStore struct {
	mu    sync.RWMutex
	items []article
}

func (s *articleStore) add(a article) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, a)
	return len(s.items)
}

func (s *articleStore) list() []article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]article(nil), s.items...)
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
