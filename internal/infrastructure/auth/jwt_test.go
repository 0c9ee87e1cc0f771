package auth

import (
	"errors"
	"testing"
	"time"

	"startlabx/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTVerifierRequiresSecret(t *testing.T) {
	if _, err := NewJWTVerifier("  "); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v, err := NewJWTVerifier("secret")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	want := entities.Identity{UserID: "u-1", Email: "a@b.c", Role: "startup"}

	token, err := v.Issue(want, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, raw := range []string{token, "Bearer " + token, "bearer  " + token} {
		got, err := v.Verify(raw)
		if err != nil {
			t.Fatalf("verify %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	}
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v, _ := NewJWTVerifier("secret")
	other, _ := NewJWTVerifier("other-secret")
	id := entities.Identity{UserID: "u-1"}

	foreign, _ := other.Issue(id, time.Hour)

	expiredIssuer, _ := NewJWTVerifier("secret")
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiredIssuer.Issue(id, time.Hour)

	noID, _ := v.Issue(entities.Identity{Email: "a@b.c"}, time.Hour)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": "u-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"bearer only", "Bearer ", ErrMissingToken},
		{"garbage", "not-a-jwt", ErrInvalidToken},
		{"wrong secret", foreign, ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"missing id", noID, ErrInvalidToken},
		{"alg none", none, ErrInvalidToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := v.Verify(tc.token); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
