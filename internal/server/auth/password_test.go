package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// mustTokenWithSubject builds a signed token with an arbitrary subject string,
// bypassing GenerateToken. Used to probe decode edge cases.
func mustTokenWithSubject(t *testing.T, subject string, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}
	return s
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !CheckPassword("secret1", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if CheckPassword("secret2", hash) {
		t.Fatalf("expected different password to fail verification")
	}
}

func TestHashPassword_SaltIsFresh(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (fresh salt)")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("whatever", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}

func TestGetUserIDFromToken_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok := mustTokenWithSubject(t, "", secret)

	if _, err := GetUserIDFromToken(tok, secret); err == nil {
		t.Fatalf("expected error for token without subject")
	}
}
