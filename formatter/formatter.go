package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
)

// Formatter converts arbitrary values into newline-terminated display
// strings. It has no side effects; styling is the only configuration.
type Formatter struct {
	styles Styles
}

// New creates a formatter with the given style set.
func New(styles Styles) *Formatter {
	return &Formatter{styles: styles}
}

// compositeIndent is the indentation used for maps and structs. Slices and
// arrays are rendered compact.
const compositeIndent = "    "

// Format renders value as a human-readable string ending in a newline.
// Strings pass through verbatim; scalars are styled; maps and structs are
// pretty-printed as JSON. A value the JSON encoder cannot serialize (for
// example a cyclic structure) returns an error instead of output.
func (f *Formatter) Format(value any) (string, error) {
	if value == nil {
		return f.styles.Null.Render("null") + "\n", nil
	}

	switch v := value.(type) {
	case string:
		return v + "\n", nil
	case bool:
		return f.styles.Bool.Render(strconv.FormatBool(v)) + "\n", nil
	case error:
		return f.styles.Marker.Render(v.Error()) + "\n", nil
	case fmt.Stringer:
		return f.styles.Marker.Render("[Stringer: "+v.String()+"]") + "\n", nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.styles.Number.Render(strconv.FormatInt(rv.Int(), 10)) + "\n", nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return f.styles.Number.Render(strconv.FormatUint(rv.Uint(), 10)) + "\n", nil
	case reflect.Float32, reflect.Float64:
		return f.styles.Number.Render(strconv.FormatFloat(rv.Float(), 'g', -1, 64)) + "\n", nil
	case reflect.Complex64, reflect.Complex128:
		return f.styles.Number.Render(strconv.FormatComplex(rv.Complex(), 'g', -1, 128)) + "\n", nil
	case reflect.Func:
		return f.styles.Marker.Render("[Function: "+funcName(rv)+"]") + "\n", nil
	case reflect.Map, reflect.Struct:
		data, err := json.MarshalIndent(value, "", compositeIndent)
		if err != nil {
			return "", fmt.Errorf("format value: %w", err)
		}
		return string(data) + "\n", nil
	case reflect.Slice, reflect.Array:
		data, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("format value: %w", err)
		}
		return string(data) + "\n", nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return f.styles.Null.Render("null") + "\n", nil
		}
		return f.Format(rv.Elem().Interface())
	default:
		return fmt.Sprintf("%v\n", value), nil
	}
}

// Undefined renders the marker for an absent value.
func (f *Formatter) Undefined() string {
	return f.styles.Null.Render("undefined") + "\n"
}

// funcName resolves the name of a function value, or "anonymous" when the
// runtime has no symbol for it.
func funcName(rv reflect.Value) string {
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil && fn.Name() != "" {
		return fn.Name()
	}
	return "anonymous"
}
