package exchangerate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/tidwall/gjson"
)

// ParseRate extracts rates.<symbol> from an exchangerate.host style payload.
func ParseRate(body []byte, base string, symbol string) (*Rate, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid json", ErrSchema)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: body is not a json object", ErrSchema)
	}

	if success := doc.Get("success"); success.Exists() && !success.Bool() {
		info := doc.Get("error.info").String()
		if info == "" {
			info = doc.Get("error.type").String()
		}
		return nil, fmt.Errorf("%w: provider reported failure: %s", ErrSchema, info)
	}

	field := doc.Get("rates." + gjson.Escape(symbol))
	if !field.Exists() || field.Type == gjson.Null {
		return nil, fmt.Errorf("%w: missing rates.%s", ErrSchema, symbol)
	}

	value, err := parseValue(field)
	if err != nil {
		return nil, fmt.Errorf("rates.%s: %w", symbol, err)
	}

	return &Rate{Base: base, Symbol: symbol, Value: value, Date: parseDate(doc)}, nil
}

func parseValue(field gjson.Result) (float64, error) {
	var value float64

	switch field.Type {
	case gjson.Number:
		value = field.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(field.Str), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrValue, field.Str)
		}
		value = parsed
	default:
		return 0, fmt.Errorf("%w: %s is not a number", ErrValue, field.Raw)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrValue, value)
	}

	return value, nil
}

// parseDate reads the quote date, preferring the unix timestamp over the date string.
func parseDate(doc gjson.Result) time.Time {
	if ts := doc.Get("timestamp"); ts.Type == gjson.Number && ts.Int() > 0 {
		return time.Unix(ts.Int(), 0).UTC()
	}

	date := doc.Get("date").String()
	if date == "" {
		return time.Time{}
	}

	parsed, err := dateparse.ParseIn(date, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
