package util

import (
	"reflect"
	"strings"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/golang-sql/civil"
	"github.com/pkg/errors"
)

var civilDateType = reflect.TypeOf(civil.Date{})

// StructAsQuery converts an endpoint input struct into query parameters using `query` tags.
//
//	Field string `query:"name"`           always sent
//	Field int    `query:"limit,omitempty"` left out when zero
//	Field *int   `query:"limit"`           left out when nil
//	Field string `query:"-"`               never sent (path segments, output options)
//
// Fields tagged `validate:"required"` must be non-zero.
func StructAsQuery(s any) (types.Query, error) {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, errors.New("input is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("input must be a struct, got %s", v.Kind())
	}
	t := v.Type()

	query := types.Query{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		value := v.Field(i)

		// check if the field is required
		isRequired := strings.Contains(field.Tag.Get("validate"), "required")
		if isRequired && value.IsZero() {
			return nil, errors.Errorf("required field '%s' is empty", field.Name)
		}

		name, omitEmpty := parseQueryTag(field)
		if name == "-" {
			continue
		}

		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		}
		if omitEmpty && value.IsZero() {
			continue
		}

		if !isAcceptedType(value.Type()) {
			return nil, errors.Errorf("unsupported field type '%s' for field '%s'", value.Type(), field.Name)
		}

		if value.Kind() == reflect.Slice {
			parts := make([]string, value.Len())
			for j := 0; j < value.Len(); j++ {
				s, _ := types.FormatQueryValue(value.Index(j).Interface())
				parts[j] = s
			}
			query[name] = strings.Join(parts, ",")
			continue
		}
		query[name] = value.Interface()
	}

	return query, nil
}

func parseQueryTag(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup("query")
	if !ok {
		return strings.ToLower(field.Name), false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	omitEmpty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

// isAcceptedType checks if values of t can be sent as a query parameter
func isAcceptedType(t reflect.Type) bool {
	if t == civilDateType {
		return true
	}

	switch t.Kind() {
	case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Bool, reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice, reflect.Array:
		// Check if the slice/array element type is an accepted type
		return t.Elem().Kind() != reflect.Slice && isAcceptedType(t.Elem())
	default:
		return false
	}
}
