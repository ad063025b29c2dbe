package coerce

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	. "github.com/dball/riveter/internal/types"
	"github.com/shopspring/decimal"
)

func coerceString(raw any, _ Target, _ Config) (typed any, err error) {
	switch v := raw.(type) {
	case nil:
	case string:
		typed = v
	case []byte:
		typed = string(v)
	case time.Time:
		typed = v.Format(TimeLayout)
	case fmt.Stringer:
		typed = v.String()
	default:
		typed = fmt.Sprint(v)
	}
	return
}

// numeric returns the integral and floating values of raw numeric kinds.
func numeric(raw any) (i int64, f float64, isInt bool, ok bool) {
	value := reflect.ValueOf(raw)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i = value.Int()
		f = float64(i)
		isInt, ok = true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := value.Uint()
		if u > math.MaxInt64 {
			f = float64(u)
			ok = true
			return
		}
		i = int64(u)
		f = float64(u)
		isInt, ok = true, true
	case reflect.Float32, reflect.Float64:
		f = value.Float()
		ok = true
	}
	return
}

func parseInteger(s string) (typed any) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		typed = i
		return
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64 {
		typed = int64(f)
	}
	return
}

func coerceInteger(raw any, _ Target, _ Config) (typed any, err error) {
	switch v := raw.(type) {
	case nil:
		return
	case string:
		typed = parseInteger(v)
		return
	case bool:
		if v {
			typed = int64(1)
		} else {
			typed = int64(0)
		}
		return
	case decimal.Decimal:
		typed = v.IntPart()
		return
	}
	i, f, isInt, ok := numeric(raw)
	switch {
	case !ok:
		if kind := reflect.ValueOf(raw).Kind(); kind == reflect.String {
			typed = parseInteger(reflect.ValueOf(raw).String())
		}
	case isInt:
		typed = i
	case !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64:
		typed = int64(f)
	}
	return
}

func coerceDecimal(raw any, _ Target, _ Config) (typed any, err error) {
	switch v := raw.(type) {
	case nil:
		return
	case decimal.Decimal:
		typed = v
		return
	case string:
		d, parseErr := decimal.NewFromString(strings.TrimSpace(v))
		if parseErr == nil {
			typed = d
		}
		return
	}
	i, f, isInt, ok := numeric(raw)
	switch {
	case !ok:
		if kind := reflect.ValueOf(raw).Kind(); kind == reflect.String {
			typed, err = coerceDecimal(reflect.ValueOf(raw).String(), Target{}, Config{})
		}
	case isInt:
		typed = decimal.NewFromInt(i)
	case !math.IsNaN(f) && !math.IsInf(f, 0):
		typed = decimal.NewFromFloat(f)
	}
	return
}

var truths = map[string]bool{
	"1":     true,
	"t":     true,
	"true":  true,
	"on":    true,
	"yes":   true,
	"":      false,
	"0":     false,
	"f":     false,
	"false": false,
	"off":   false,
	"no":    false,
}

func coerceBoolean(raw any, _ Target, _ Config) (typed any, err error) {
	switch v := raw.(type) {
	case nil:
		typed = false
		return
	case bool:
		typed = v
		return
	case string:
		truth, ok := truths[strings.ToLower(strings.TrimSpace(v))]
		if ok {
			typed = truth
		}
		return
	case decimal.Decimal:
		typed = !v.IsZero()
		return
	}
	i, f, isInt, ok := numeric(raw)
	switch {
	case !ok:
	case isInt:
		typed = i != 0
	default:
		typed = f != 0
	}
	return
}
