package adapters

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var referencePattern = regexp.MustCompile(`^PAY-\d{8}-\d{6}-\d{3}$`)

func TestReferenceGeneratorFormat(t *testing.T) {
	gen := NewReferenceGenerator()

	for i := 0; i < 100; i++ {
		ref := gen.Generate()
		if !referencePattern.MatchString(ref) {
			t.Fatalf("reference %q does not match expected format", ref)
		}
	}
}

func TestReferenceGeneratorUsesClock(t *testing.T) {
	fixed := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	gen := &referenceGenerator{now: func() time.Time { return fixed }}

	ref := gen.Generate()
	if !strings.HasPrefix(ref, "PAY-20250314-092653-") {
		t.Errorf("reference %q does not carry the clock timestamp", ref)
	}
}

func TestReferenceGeneratorSuffixRange(t *testing.T) {
	gen := NewReferenceGenerator()

	for i := 0; i < 500; i++ {
		ref := gen.Generate()
		suffix := ref[strings.LastIndex(ref, "-")+1:]
		if len(suffix) != 3 {
			t.Fatalf("suffix %q of %q is not three digits", suffix, ref)
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			t.Fatalf("suffix %q is not numeric: %v", suffix, err)
		}
		if n < 0 || n > 999 {
			t.Fatalf("suffix %d outside [0, 999]", n)
		}
	}
}

func TestPasswordServiceHash(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("s3cret-passphrase")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "s3cret-passphrase" {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
}
