package core

// DebugEnv is the environment variable that opens the debug gate.
const DebugEnv = "DEBUG"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// DebugEnabled reports whether DEBUG is exactly "true" or "1". It is
// evaluated on every call; nothing is cached.
func DebugEnabled(lookup LookupFunc) bool {
	if lookup == nil {
		return false
	}
	v, _ := lookup(DebugEnv)
	return v == "true" || v == "1"
}
