// Package session holds the per-client session: the backend access token,
// the logged-in username and the UI preferences (locale, color mode).
// Sessions are the only durable client-side state; everything else lives
// in caches or dies with the process.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionTTL is the sliding lifetime of a session.
const SessionTTL = 24 * time.Hour

const keyPrefix = "session:"

// Supported locales. Vietnamese is the default, English the fallback pair.
const (
	LocaleVI = "vi"
	LocaleEN = "en"
)

// Color modes.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one client's persisted state.
type Session struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"accessToken"`
	Locale      string    `json:"locale"`
	ColorMode   string    `json:"colorMode"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoggedIn derives login state from the persisted credentials: a token
// must be present, and when it parses as a JWT it must not be expired.
// Opaque tokens are taken at face value; the backend is the final judge.
func (s *Session) LoggedIn() bool {
	if s == nil || s.AccessToken == "" || s.Username == "" {
		return false
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims)
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// Store persists sessions in Redis with a sliding TTL.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Create starts a session for a username/token pair with default
// preferences.
func (s *Store) Create(ctx context.Context, username, accessToken string) (*Session, error) {
	sess := &Session{
		ID:          uuid.New().String(),
		Username:    username,
		AccessToken: accessToken,
		Locale:      LocaleVI,
		ColorMode:   ModeLight,
		CreatedAt:   time.Now(),
	}
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a session by ID.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save writes a session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sess.ID, data, SessionTTL).Err()
}

// Delete ends a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}

// ValidLocale reports whether a locale is one of the two supported ones.
func ValidLocale(locale string) bool {
	return locale == LocaleVI || locale == LocaleEN
}

// ValidColorMode reports whether a color mode is supported.
func ValidColorMode(mode string) bool {
	return mode == ModeLight || mode == ModeDark
}
