package mockstore

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strconv"

	"github.com/msomdec/userboard/internal/domain"
)

// Reserved query parameters; everything else is a field filter.
const (
	paramExact = "_exact"
	paramStart = "_start"
	paramLimit = "_limit"
)

// parseListOptions maps the request query onto ListOptions. `_exact`
// switches text filters from substring to exact matching, `_start` and
// `_limit` page the result.
func parseListOptions(r *http.Request) (domain.ListOptions, error) {
	query := r.URL.Query()
	var opts domain.ListOptions

	exact := false
	if v := query.Get(paramExact); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid %s value %q", paramExact, v)
		}
		exact = parsed
	}

	if v := query.Get(paramStart); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid %s value %q", paramStart, v)
		}
		opts.Start = n
	}

	if v := query.Get(paramLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid %s value %q", paramLimit, v)
		}
		opts.Limit = n
	}

	// Sort the field names so the built SQL is stable for a given URL.
	fields := make([]string, 0, len(query))
	for field := range query {
		if field == paramExact || field == paramStart || field == paramLimit {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		opts.Filters = append(opts.Filters, domain.Filter{
			Field: field,
			Value: query.Get(field),
			Exact: exact,
		})
	}

	return opts, nil
}

// setRecordID forces the ID field of a decoded record to the path id.
func setRecordID(record any, id int64) error {
	v := reflect.ValueOf(record).Elem()
	f := v.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.Int64 {
		return errors.New("record has no int64 ID field")
	}
	f.SetInt(id)
	return nil
}
