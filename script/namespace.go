package script

// Namespace holds parsed argument values keyed by parameter name.
type Namespace map[string]any

// Get returns the raw value for name, or nil when absent.
func (ns Namespace) Get(name string) any { return ns[name] }

// String returns the value for name as a string, or "" when absent or not
// a string.
func (ns Namespace) String(name string) string {
	s, _ := ns[name].(string)
	return s
}

// Int returns the value for name as an int, or 0 when absent or not an int.
func (ns Namespace) Int(name string) int {
	i, _ := ns[name].(int)
	return i
}

// Bool returns the value for name as a bool, or false when absent or not a
// bool.
func (ns Namespace) Bool(name string) bool {
	b, _ := ns[name].(bool)
	return b
}
