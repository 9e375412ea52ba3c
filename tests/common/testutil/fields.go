//go:build unit || e2e

package testutil

// Field builds a DtoMap mutator that overrides key, or removes it
// entirely when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
