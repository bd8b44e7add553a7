// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// ReferenceGenerator produces the human-facing identifier assigned to a
// payment at creation, format PAY-<YYYYMMDD>-<HHMMSS>-<NNN>.
type ReferenceGenerator interface {
	Generate() string
}
