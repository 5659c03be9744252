package lifecycle

import (
	"strings"
	"testing"
)

func TestReferenceCode_Format(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer(12, 0)

	code, err := issuer.ReferenceCode("GA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(code, "GA-") {
		t.Fatalf("code %q should start with %q", code, "GA-")
	}

	suffix := strings.TrimPrefix(code, "GA-")
	if len(suffix) != 12 {
		t.Errorf("suffix length: got %d, want 12", len(suffix))
	}
	for _, r := range suffix {
		if !strings.ContainsRune(referenceAlphabet, r) {
			t.Errorf("suffix contains %q, outside the uppercase alphanumeric alphabet", r)
		}
	}
}

func TestReferenceCode_PrefixNormalized(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer(8, 0)

	code, err := issuer.ReferenceCode(" vip- ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(code, "VIP-") {
		t.Errorf("code %q should start with %q", code, "VIP-")
	}
	if strings.Contains(code, "--") {
		t.Errorf("code %q contains a doubled hyphen", code)
	}
}

func TestReferenceCode_EmptyPrefix(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer(10, 0)

	code, err := issuer.ReferenceCode("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 10 {
		t.Errorf("bare code length: got %d, want 10", len(code))
	}
	if strings.HasPrefix(code, "-") {
		t.Errorf("bare code %q should not start with a hyphen", code)
	}
}

func TestReferenceCode_Distinct(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer(12, 0)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := issuer.ReferenceCode("TK")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}

func TestSecretToken_Length(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer(0, 40)

	token, err := issuer.SecretToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) != 40 {
		t.Errorf("token length: got %d, want 40", len(token))
	}
	for _, r := range token {
		if !strings.ContainsRune(tokenAlphabet, r) {
			t.Errorf("token contains %q, outside the alphanumeric alphabet", r)
		}
	}
}

func TestSecretToken_MinimumEnforced(t *testing.T) {
	t.Parallel()

	// A configured length below the floor is raised, never honored.
	issuer := NewIssuer(0, 8)

	token, err := issuer.SecretToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) < MinSecretLength {
		t.Errorf("token length %d is below the %d floor", len(token), MinSecretLength)
	}
}

func TestNewIssuer_Defaults(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer(0, 0)

	code, err := issuer.ReferenceCode("GA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(strings.TrimPrefix(code, "GA-")); got != DefaultReferenceLength {
		t.Errorf("default suffix length: got %d, want %d", got, DefaultReferenceLength)
	}

	token, err := issuer.SecretToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) != DefaultSecretLength {
		t.Errorf("default token length: got %d, want %d", len(token), DefaultSecretLength)
	}
}
