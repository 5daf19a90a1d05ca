package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v, want nil", err)
	}
	if hash == "" || hash == "correct horse battery staple" {
		t.Fatalf("HashPassword() returned %q, want a bcrypt hash", hash)
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() with correct password = false, want true")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() with wrong password = true, want false")
	}
}

func TestHashPassword_ByteLimit(t *testing.T) {
	// exactly at the limit is fine
	at := strings.Repeat("a", 72)
	if _, err := HashPassword(at, 4); err != nil {
		t.Errorf("HashPassword(72 bytes) error = %v, want nil", err)
	}

	// one past the limit fails
	over := strings.Repeat("a", 73)
	if _, err := HashPassword(over, 4); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("HashPassword(73 bytes) error = %v, want ErrPasswordTooLong", err)
	}
}

func TestHashPassword_MultiByteRunes(t *testing.T) {
	// 25 runes but 75 bytes: the limit is on bytes, not characters
	pwd := strings.Repeat("€", 25)
	if len(pwd) <= 72 {
		t.Fatalf("test setup: want >72 bytes, got %d", len(pwd))
	}

	if _, err := HashPassword(pwd, 4); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("HashPassword(multi-byte, 75 bytes) error = %v, want ErrPasswordTooLong", err)
	}

	// 24 runes (72 bytes) is accepted
	ok := strings.Repeat("€", 24)
	if _, err := HashPassword(ok, 4); err != nil {
		t.Errorf("HashPassword(multi-byte, 72 bytes) error = %v, want nil", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	testCases := []string{"", "not-a-hash", "$2a$garbage"}

	for _, hash := range testCases {
		if CheckPassword("whatever", hash) {
			t.Errorf("CheckPassword(%q) = true, want false", hash)
		}
	}
}
