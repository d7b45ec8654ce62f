package core

// Delimiter separates namespace segments.
const Delimiter = ":"

// Namespace is a logger prefix such as "Core:Auth:Token". The zero value
// is the root namespace and is not printed.
type Namespace string

// Join appends child as a new segment. Neither side is validated, so an
// empty child still adds a delimiter to a non-empty parent.
func (n Namespace) Join(child string) Namespace {
	if n == "" {
		return Namespace(child)
	}
	return n + Delimiter + Namespace(child)
}

// IsRoot reports whether n is the empty root namespace.
func (n Namespace) IsRoot() bool {
	return n == ""
}

func (n Namespace) String() string {
	return string(n)
}
