package coerce

import (
	"reflect"
	"strings"
	"time"

	. "github.com/dball/riveter/internal/types"
)

// timeLayouts are tried in order when parsing times and dates.
var timeLayouts = []string{
	TimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

func parseTime(s string, loc *time.Location) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	for _, layout := range timeLayouts {
		parsed, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			t = parsed
			ok = true
			return
		}
	}
	return
}

func coerceDate(raw any, _ Target, cfg Config) (typed any, err error) {
	date, ok := toDate(raw, cfg)
	if ok {
		typed = date
	}
	return
}

func toDate(raw any, cfg Config) (date Date, ok bool) {
	switch v := raw.(type) {
	case Date:
		date, ok = v, true
	case *Date:
		if v != nil {
			date, ok = *v, true
		}
	case time.Time:
		date, ok = DateOf(v), true
	case string:
		parsed, err := ParseDate(strings.TrimSpace(v))
		if err == nil {
			date, ok = parsed, true
			return
		}
		t, parsedTime := parseTime(v, cfg.location())
		if parsedTime {
			date, ok = DateOf(t), true
		}
	}
	return
}

func coerceTime(raw any, _ Target, cfg Config) (typed any, err error) {
	switch v := raw.(type) {
	case time.Time:
		typed = v
	case *time.Time:
		if v != nil {
			typed = *v
		}
	case Date:
		y, m, d := v.Time().Date()
		typed = time.Date(y, m, d, 0, 0, 0, 0, cfg.location())
	case string:
		t, ok := parseTime(v, cfg.location())
		if ok {
			typed = t
		}
	}
	return
}

// Endpoints coerces a raw date range to its endpoints, each of which is a Date or nil.
// Ranges may be given as DateRanges, text of the form 2010-01-12..2011-01-12, two
// element sequences, or mappings with from and to keys.
func Endpoints(raw any, cfg Config) (from any, to any) {
	var rawFrom, rawTo any
	switch v := raw.(type) {
	case nil:
		return
	case DateRange:
		from, to = v.From, v.To
		return
	case *DateRange:
		if v != nil {
			from, to = v.From, v.To
		}
		return
	case string:
		f, t, ok := strings.Cut(v, DateRangeSeparator)
		if !ok {
			return
		}
		rawFrom, rawTo = f, t
	default:
		value := reflect.ValueOf(raw)
		switch value.Kind() {
		case reflect.Slice, reflect.Array:
			if value.Len() != 2 {
				return
			}
			rawFrom, rawTo = value.Index(0).Interface(), value.Index(1).Interface()
		case reflect.Map:
			if value.Type().Key().Kind() != reflect.String {
				return
			}
			for _, key := range value.MapKeys() {
				switch key.String() {
				case "from":
					rawFrom = value.MapIndex(key).Interface()
				case "to":
					rawTo = value.MapIndex(key).Interface()
				}
			}
		default:
			return
		}
	}
	if date, ok := toDate(rawFrom, cfg); ok {
		from = date
	}
	if date, ok := toDate(rawTo, cfg); ok {
		to = date
	}
	return
}

func coerceDateRange(raw any, _ Target, cfg Config) (typed any, err error) {
	from, to := Endpoints(raw, cfg)
	if from != nil && to != nil {
		typed = DateRange{From: from.(Date), To: to.(Date)}
	}
	return
}
