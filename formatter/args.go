package formatter

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Args joins values into one message. See the package documentation for
// the verb set.
func Args(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}

	var sb strings.Builder
	rest := args
	if format, ok := args[0].(string); ok && strings.IndexByte(format, '%') >= 0 {
		rest = expand(&sb, format, args[1:])
	} else {
		sb.WriteString(Value(args[0]))
		rest = args[1:]
	}

	for _, a := range rest {
		sb.WriteByte(' ')
		sb.WriteString(Value(a))
	}
	return sb.String()
}

// Value renders a single argument: strings verbatim, errors by their
// Error text, everything else with %+v. Errors never go through %+v,
// which prints a stack trace for github.com/pkg/errors values.
func Value(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%+v", v)
	}
}

// expand substitutes verbs in format and returns the unconsumed args.
// A verb with no argument left is written through unchanged.
func expand(sb *strings.Builder, format string, args []interface{}) []interface{} {
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			sb.WriteByte(c)
			continue
		}

		verb := format[i+1]
		if verb == '%' {
			sb.WriteByte('%')
			i++
			continue
		}
		if !strings.ContainsRune("sdifjoOc", rune(verb)) || len(args) == 0 {
			sb.WriteByte(c)
			continue
		}

		arg := args[0]
		args = args[1:]
		i++

		switch verb {
		case 's', 'o', 'O':
			sb.WriteString(Value(arg))
		case 'd':
			sb.WriteString(number(arg, false))
		case 'i':
			sb.WriteString(number(arg, true))
		case 'f':
			sb.WriteString(number(arg, false))
		case 'j':
			b, err := json.Marshal(arg)
			if err != nil {
				sb.WriteString("%!j(" + err.Error() + ")")
			} else {
				sb.Write(b)
			}
		case 'c':
			// CSS directives have no terminal meaning; the argument is dropped.
		}
	}
	return args
}

// number renders arg as a number, or NaN if it is not numeric.
func number(arg interface{}, truncate bool) string {
	var f float64
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			f = 1
		}
	case reflect.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return "NaN"
		}
		f = parsed
	default:
		return "NaN"
	}

	if truncate {
		f = math.Trunc(f)
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
