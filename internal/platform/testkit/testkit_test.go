package testkit

import "testing"

func TestAssertionHelpers(t *testing.T) {
	t.Parallel()

	t.Run("MustPanic accepts a panicking fn", func(t *testing.T) {
		MustPanic(t, func() { panic("boom") })
	})

	t.Run("MustNotPanic accepts a calm fn", func(t *testing.T) {
		MustNotPanic(t, func() {})
	})

	t.Run("MustContain finds a substring", func(t *testing.T) {
		MustContain(t, "ncr luzon visayas", "luzon")
	})
}
