package querybuilder

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Values encodes the exported fields of a struct tagged `query:"name[,omitempty]"`
// into url.Values. Booleans are written as 1/0 the way the admin API expects.
func Values(model any) (url.Values, error) {
	out := url.Values{}
	if model == nil {
		return out, nil
	}

	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return out, nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("query model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("query"))
		if tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		omitEmpty := len(parts) > 1 && strings.TrimSpace(parts[1]) == "omitempty"

		fv := value.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		encoded, ok := encodeScalar(fv)
		if !ok {
			return nil, fmt.Errorf("unsupported query field %s of kind %s", field.Name, fv.Kind())
		}
		out.Set(name, encoded)
	}

	return out, nil
}

// Merge copies every key of src into dst, replacing existing values.
func Merge(dst, src url.Values) url.Values {
	if dst == nil {
		dst = url.Values{}
	}
	for key, values := range src {
		dst[key] = append([]string(nil), values...)
	}
	return dst
}

func encodeScalar(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Bool:
		if v.Bool() {
			return "1", true
		}
		return "0", true
	default:
		return "", false
	}
}
