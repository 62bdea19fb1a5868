// Package validate provides struct-tag validation for request inputs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	numeric             any number
//	integer             whole number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N                number > N
//	gte=N               number >= N
//	lt=N                number < N
//	lte=N               number <= N
//	between=min,max     number or string length between min and max (inclusive)
//	in=a,b,c            value must be one of the listed items
//	not_in=a,b,c        value must NOT be one of the listed items
//	regex=pattern       value must match the regex (avoid commas in pattern)
//
// Example:
//
//	type Input struct {
//	    Name   string  `json:"name"   validate:"required,min=2,max=100"`
//	    Weight float64 `json:"weight" validate:"nullable,gte=0"`
//	    Status string  `json:"status" validate:"required,in=created"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		// If `nullable` is present and field is empty — skip all rules.
		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	// Rules apply to the pointed-at value; a nil pointer only ever fails
	// `required` (via isEmpty below).
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}

	case "min":
		if n, ok := numericValue(v); ok {
			if limit, err := strconv.ParseFloat(param, 64); err == nil && n < limit {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if limit, err := strconv.Atoi(param); err == nil && len(raw) < limit {
			return fmt.Sprintf("The %s must be at least %d characters.", field, limit)
		}
	case "max":
		if n, ok := numericValue(v); ok {
			if limit, err := strconv.ParseFloat(param, 64); err == nil && n > limit {
				return fmt.Sprintf("The %s may not be greater than %s.", field, param)
			}
		} else if limit, err := strconv.Atoi(param); err == nil && len(raw) > limit {
			return fmt.Sprintf("The %s may not be greater than %d characters.", field, limit)
		}

	case "gt":
		if n, ok := numericValue(v); ok {
			if limit, err := strconv.ParseFloat(param, 64); err == nil && n <= limit {
				return fmt.Sprintf("The %s must be greater than %s.", field, param)
			}
		}
	case "gte":
		if n, ok := numericValue(v); ok {
			if limit, err := strconv.ParseFloat(param, 64); err == nil && n < limit {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		}
	case "lt":
		if n, ok := numericValue(v); ok {
			if limit, err := strconv.ParseFloat(param, 64); err == nil && n >= limit {
				return fmt.Sprintf("The %s must be less than %s.", field, param)
			}
		}
	case "lte":
		if n, ok := numericValue(v); ok {
			if limit, err := strconv.ParseFloat(param, 64); err == nil && n > limit {
				return fmt.Sprintf("The %s may not be greater than %s.", field, param)
			}
		}

	case "between":
		lo, hi, ok := splitRange(param)
		if !ok {
			return ""
		}
		if n, isNum := numericValue(v); isNum {
			if n < lo || n > hi {
				return fmt.Sprintf("The %s must be between %s.", field, param)
			}
		} else if l := float64(len(raw)); l < lo || l > hi {
			return fmt.Sprintf("The %s must be between %s characters.", field, param)
		}

	case "in":
		if !contains(strings.Split(param, ","), raw) {
			return fmt.Sprintf("The selected %s is invalid.", field)
		}
	case "not_in":
		if contains(strings.Split(param, ","), raw) {
			return fmt.Sprintf("The selected %s is invalid.", field)
		}

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil || !re.MatchString(raw) {
			return fmt.Sprintf("The %s format is invalid.", field)
		}
	}

	return ""
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	rules := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		if part == "" {
			continue
		}
		// Re-join params of list rules (in=a,b,c / between=1,5 / not_in=x,y)
		// that the comma split tore apart.
		if strings.Contains(part, "=") {
			key, _, _ := strings.Cut(part, "=")
			if key == "in" || key == "not_in" || key == "between" {
				for i+1 < len(parts) && !strings.Contains(parts[i+1], "=") && !isRuleName(parts[i+1]) {
					part += "," + strings.TrimSpace(parts[i+1])
					i++
				}
			}
		}
		rules = append(rules, part)
	}
	return rules
}

var ruleNames = map[string]bool{
	"required": true, "nullable": true, "numeric": true, "integer": true,
}

func isRuleName(s string) bool { return ruleNames[strings.TrimSpace(s)] }

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strings.ToLower(field.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name)
	}
	return name
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

func numericValue(v reflect.Value) (float64, bool) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func splitRange(param string) (lo, hi float64, ok bool) {
	a, b, found := strings.Cut(param, ",")
	if !found {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(a), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(b), 64)
	return lo, hi, err1 == nil && err2 == nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if strings.TrimSpace(item) == s {
			return true
		}
	}
	return false
}
