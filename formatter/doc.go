// Package formatter turns arbitrary Go values into newline-terminated
// display strings for console output.
//
// Rendering is driven by the value's runtime type: strings pass through
// verbatim, scalars (numbers, booleans) are styled, nil renders as the
// literal "null", function values render as a marker including the
// function's resolved name, and fmt.Stringer implementations render as a
// marker including their description. Maps and structs are pretty-printed
// as JSON with a four-space indent; slices and arrays stay compact.
//
// Styling uses lipgloss with two fixed sets: DefaultStyles for terminals
// and NoColorStyles for plain streams. The Formatter itself is stateless
// and safe for concurrent use.
//
// Format never panics. Values the JSON encoder rejects, such as cyclic
// structures or channels inside a struct, surface as an error to the
// caller rather than terminating anything.
package formatter
