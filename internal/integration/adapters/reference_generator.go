// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/payment-system/backend/internal/application/adapter"
)

// referenceSuffixSpace bounds the random suffix to three digits. The
// suffix space is only 1000 values per second, so the reference_number
// unique index is what surfaces a same-second collision.
const referenceSuffixSpace = 1000

// referenceGenerator implements the adapter.ReferenceGenerator interface.
type referenceGenerator struct {
	now func() time.Time
}

// NewReferenceGenerator creates a generator backed by the wall clock.
func NewReferenceGenerator() adapter.ReferenceGenerator {
	return &referenceGenerator{
		now: time.Now,
	}
}

// Generate produces a reference of the form PAY-<YYYYMMDD>-<HHMMSS>-<NNN>
// from the current instant and a uniform random three-digit suffix.
func (g *referenceGenerator) Generate() string {
	timestamp := g.now().Format("20060102-150405")
	return fmt.Sprintf("PAY-%s-%03d", timestamp, rand.IntN(referenceSuffixSpace))
}
