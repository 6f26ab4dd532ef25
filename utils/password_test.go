package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !IsHashed(hashed) {
		t.Errorf("hash %q not recognized as bcrypt", hashed)
	}

	// Random salt: same input, different hashes.
	hashed2, _ := HashPassword("secret123")
	if hashed == hashed2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPasswordHashed(t *testing.T) {
	hashed, _ := HashPassword("secret123")

	valid, legacy := VerifyPassword(hashed, "secret123")
	if !valid {
		t.Error("correct password rejected")
	}
	if legacy {
		t.Error("bcrypt credential flagged as legacy")
	}

	valid, _ = VerifyPassword(hashed, "wrong")
	if valid {
		t.Error("wrong password accepted")
	}
}

func TestVerifyPasswordLegacy(t *testing.T) {
	valid, legacy := VerifyPassword("plaintext", "plaintext")
	if !valid {
		t.Error("matching legacy credential rejected")
	}
	if !legacy {
		t.Error("plain-text credential not flagged as legacy")
	}

	valid, _ = VerifyPassword("plaintext", "other")
	if valid {
		t.Error("mismatched legacy credential accepted")
	}

	valid, legacy = VerifyPassword("", "anything")
	if valid || legacy {
		t.Error("empty stored credential must never verify")
	}
}

func TestIsHashed(t *testing.T) {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if !IsHashed(prefix + "10$abcdefghijklmnopqrstuv") {
			t.Errorf("prefix %q not recognized", prefix)
		}
	}
	if IsHashed("plaintext") {
		t.Error("plain text recognized as hash")
	}
	if IsHashed("$1$old-md5-crypt") {
		t.Error("non-bcrypt modular crypt recognized as bcrypt")
	}
}
