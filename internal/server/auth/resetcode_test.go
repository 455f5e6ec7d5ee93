package auth

import (
	"regexp"
	"testing"
)

func TestGenerateResetCode_Format(t *testing.T) {
	code, err := GenerateResetCode()
	if err != nil {
		t.Fatalf("GenerateResetCode error: %v", err)
	}
	if len(code) != ResetCodeLength {
		t.Fatalf("want length %d, got %d (%q)", ResetCodeLength, len(code), code)
	}
	if !regexp.MustCompile(`^[0-9A-F]+$`).MatchString(code) {
		t.Fatalf("code %q not upper-case hex", code)
	}
}

func TestGenerateResetCode_NotConstant(t *testing.T) {
	a, err := GenerateResetCode()
	if err != nil {
		t.Fatalf("GenerateResetCode error: %v", err)
	}
	b, err := GenerateResetCode()
	if err != nil {
		t.Fatalf("GenerateResetCode error: %v", err)
	}
	if a == b {
		t.Fatalf("two generated codes are identical: %q", a)
	}
}

func TestHashResetCode_Deterministic(t *testing.T) {
	h1 := HashResetCode("A1B2C3D4")
	h2 := HashResetCode("A1B2C3D4")
	if h1 != h2 {
		t.Fatalf("hashing is not deterministic: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("want 64 hex chars of sha256, got %d", len(h1))
	}
	if h1 == HashResetCode("A1B2C3D5") {
		t.Fatal("different codes hash identically")
	}
}
