package tags

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateTimeSeparator = " &mdash; "
	timeSeparator     = " : "
	defaultYearSpan   = 5
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads a bound value as a time. Strings are tried against RFC 3339
// and the common date/datetime layouts.
func ParseTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		v = strings.TrimSpace(v)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

type datePart struct {
	position int
	choices  []Choice
	selected string
}

func renderDateSelect(h *Helper, req Request) (string, error) {
	value := dateValue(h, req)
	return h.dateParts(req, dateParts(value, req.Options))
}

func renderDateTimeSelect(h *Helper, req Request) (string, error) {
	value := dateValue(h, req)
	date, err := h.dateParts(req, dateParts(value, req.Options))
	if err != nil {
		return "", err
	}
	clock, err := h.dateParts(req, timeParts(value))
	if err != nil {
		return "", err
	}
	return date + dateTimeSeparator + clock, nil
}

func dateValue(h *Helper, req Request) time.Time {
	if value, ok := ParseTime(req.Value); ok {
		return value
	}
	return h.Now()
}

// dateParts renders one select per part; ids and names carry the
// multi-parameter suffix, e.g. article_published_on_1i and
// article[published_on(1i)].
func (h *Helper) dateParts(req Request, parts []datePart) (string, error) {
	shared := req.Attrs.Without("id", "name")
	baseID := FieldID(req.Object, req.Field)
	if id := strings.TrimSpace(req.Attrs["id"]); id != "" {
		baseID = strings.TrimSuffix(id, "_1i")
	}

	var builder strings.Builder
	for idx, part := range parts {
		suffix := strconv.Itoa(part.position) + "i"
		attrs := Attributes{
			"id":   baseID + "_" + suffix,
			"name": FieldName(req.Object, req.Field+"("+suffix+")"),
		}.Merge(shared)
		markup, err := h.SelectTag(part.choices, part.selected, attrs)
		if err != nil {
			return "", fmt.Errorf("tags: render date part %s: %w", suffix, err)
		}
		if idx > 0 && part.position > 3 {
			builder.WriteString(timeSeparator)
		}
		builder.WriteString(markup)
	}
	return builder.String(), nil
}

func dateParts(value time.Time, opts ControlOptions) []datePart {
	start := opts.StartYear
	if start == 0 {
		start = value.Year() - defaultYearSpan
	}
	end := opts.EndYear
	if end == 0 {
		end = value.Year() + defaultYearSpan
	}

	step := 1
	if start > end {
		step = -1
	}
	years := make([]Choice, 0, abs(end-start)+1)
	for year := start; ; year += step {
		years = append(years, numberChoice(year, false))
		if year == end {
			break
		}
	}

	months := make([]Choice, 0, 12)
	for month := time.January; month <= time.December; month++ {
		months = append(months, Choice{Label: month.String(), Value: strconv.Itoa(int(month))})
	}

	days := make([]Choice, 0, 31)
	for day := 1; day <= 31; day++ {
		days = append(days, numberChoice(day, false))
	}

	return []datePart{
		{position: 1, choices: years, selected: strconv.Itoa(value.Year())},
		{position: 2, choices: months, selected: strconv.Itoa(int(value.Month()))},
		{position: 3, choices: days, selected: strconv.Itoa(value.Day())},
	}
}

func timeParts(value time.Time) []datePart {
	hours := make([]Choice, 0, 24)
	for hour := 0; hour < 24; hour++ {
		hours = append(hours, numberChoice(hour, true))
	}
	minutes := make([]Choice, 0, 60)
	for minute := 0; minute < 60; minute++ {
		minutes = append(minutes, numberChoice(minute, true))
	}
	return []datePart{
		{position: 4, choices: hours, selected: fmt.Sprintf("%02d", value.Hour())},
		{position: 5, choices: minutes, selected: fmt.Sprintf("%02d", value.Minute())},
	}
}

func numberChoice(n int, pad bool) Choice {
	value := strconv.Itoa(n)
	if pad {
		value = fmt.Sprintf("%02d", n)
	}
	return Choice{Label: value, Value: value}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
