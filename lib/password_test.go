package lib

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeArgon2Hash(t *testing.T) {
	salt := base64.RawStdEncoding.EncodeToString([]byte("0123456789abcdef"))
	hash := base64.RawStdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	encoded := "$argon2id$v=19$m=65536,t=1,p=4$" + salt + "$" + hash

	parts, err := DecodeArgon2Hash(encoded)
	if err != nil {
		t.Fatalf("DecodeArgon2Hash returned error: %v", err)
	}
	if parts.Memory != 65536 {
		t.Fatalf("Memory = %d, want 65536", parts.Memory)
	}
	if parts.Time != 1 {
		t.Fatalf("Time = %d, want 1", parts.Time)
	}
	if parts.Threads != 4 {
		t.Fatalf("Threads = %d, want 4", parts.Threads)
	}
	if parts.KeyLen != 32 {
		t.Fatalf("KeyLen = %d, want 32", parts.KeyLen)
	}
	if len(parts.Salt) != 16 {
		t.Fatalf("salt length = %d, want 16", len(parts.Salt))
	}
}

func TestDecodeArgon2HashRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not a hash",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA",
	}
	for _, encoded := range cases {
		if _, err := DecodeArgon2Hash(encoded); !errors.Is(err, ErrInvalidHash) {
			t.Fatalf("DecodeArgon2Hash(%q) error = %v, want ErrInvalidHash", encoded, err)
		}
	}
}

func TestDecodeArgon2HashRejectsWrongVersion(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"
	if _, err := DecodeArgon2Hash(encoded); !errors.Is(err, ErrIncompatibleVersion) {
		t.Fatalf("error = %v, want ErrIncompatibleVersion", err)
	}
}

func TestSecureCompare(t *testing.T) {
	if !SecureCompare([]byte("same"), []byte("same")) {
		t.Fatal("SecureCompare returned false for equal slices")
	}
	if SecureCompare([]byte("same"), []byte("other")) {
		t.Fatal("SecureCompare returned true for different slices")
	}
	if SecureCompare([]byte("same"), []byte("sameplus")) {
		t.Fatal("SecureCompare returned true for different lengths")
	}
}
