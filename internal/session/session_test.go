package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "an",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestLoggedIn(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"nil session", nil, false},
		{"no token", &Session{Username: "an"}, false},
		{"no username", &Session{AccessToken: "abc"}, false},
		{"opaque token", &Session{Username: "an", AccessToken: "not-a-jwt"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.session.LoggedIn(); got != tc.want {
				t.Errorf("LoggedIn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoggedIn_JWTExpiry(t *testing.T) {
	t.Parallel()

	live := &Session{Username: "an", AccessToken: signedToken(t, time.Now().Add(time.Hour))}
	if !live.LoggedIn() {
		t.Error("session with a live JWT should be logged in")
	}

	expired := &Session{Username: "an", AccessToken: signedToken(t, time.Now().Add(-time.Hour))}
	if expired.LoggedIn() {
		t.Error("session with an expired JWT should not be logged in")
	}
}

func TestValidLocale(t *testing.T) {
	t.Parallel()

	if !ValidLocale(LocaleVI) || !ValidLocale(LocaleEN) {
		t.Error("vi and en should be valid locales")
	}
	if ValidLocale("fr") {
		t.Error("fr should not be a valid locale")
	}
}

func TestValidColorMode(t *testing.T) {
	t.Parallel()

	if !ValidColorMode(ModeLight) || !ValidColorMode(ModeDark) {
		t.Error("light and dark should be valid modes")
	}
	if ValidColorMode("sepia") {
		t.Error("sepia should not be a valid mode")
	}
}
