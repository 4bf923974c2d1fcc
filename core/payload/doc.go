// Package payload extracts loosely-typed fields from JSON request bodies.
//
// The game client submits partial documents where a field may be absent,
// present with the zero value, or present with the wrong type, and each of
// those cases drives different behavior (required-field validation treats
// an explicit 0 as present; partial patches skip wrong-typed fields
// silently). Decoding into typed structs would erase those distinctions,
// so handlers decode into a generic map and use these accessors, which all
// report presence alongside the value.
package payload
