package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"busline/internal/i18n"
	"busline/internal/middleware"
	"busline/internal/service"
	"busline/internal/session"
)

// SessionHandler handles HTTP requests for client sessions and UI
// preferences. It also owns one notification poller per live session,
// keeping the unread badge warm while the session exists.
type SessionHandler struct {
	store         *session.Store
	notifications *service.NotificationService
	pollInterval  time.Duration

	mu      sync.Mutex
	pollers map[string]context.CancelFunc
}

// NewSessionHandler creates a new SessionHandler. notifications may be
// nil to disable background polling.
func NewSessionHandler(store *session.Store, notifications *service.NotificationService, pollInterval time.Duration) *SessionHandler {
	return &SessionHandler{
		store:         store,
		notifications: notifications,
		pollInterval:  pollInterval,
		pollers:       make(map[string]context.CancelFunc),
	}
}

func (h *SessionHandler) startPoller(sess *session.Session) {
	if h.notifications == nil || h.pollInterval <= 0 || sess.Username == "" {
		return
	}
	poller := service.NewPoller(h.notifications, h.pollInterval, sess.AccessToken, sess.Username)
	ctx, cancel := context.WithCancel(context.Background())
	h.mu.Lock()
	h.pollers[sess.ID] = cancel
	h.mu.Unlock()
	go poller.Start(ctx)
}

func (h *SessionHandler) stopPoller(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cancel, ok := h.pollers[sessionID]; ok {
		cancel()
		delete(h.pollers, sessionID)
	}
}

// CreateSessionRequest is the HTTP request body for opening a session.
// The access token comes from the backend's own login endpoint; this
// service never sees credentials.
type CreateSessionRequest struct {
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

// SessionResponse is the session payload. The access token is never
// echoed back.
type SessionResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Locale    string `json:"locale"`
	ColorMode string `json:"colorMode"`
	LoggedIn  bool   `json:"loggedIn"`
}

func toSessionResponse(sess *session.Session) SessionResponse {
	return SessionResponse{
		ID:        sess.ID,
		Username:  sess.Username,
		Locale:    sess.Locale,
		ColorMode: sess.ColorMode,
		LoggedIn:  sess.LoggedIn(),
	}
}

// Create handles POST /v1/session
func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sess, err := h.store.Create(c.Request.Context(), req.Username, req.AccessToken)
	if err != nil {
		respondError(c, err)
		return
	}
	h.startPoller(sess)
	respondJSON(c, http.StatusCreated, toSessionResponse(sess))
}

// Get handles GET /v1/session
func (h *SessionHandler) Get(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		respondError(c, service.ErrNotLoggedIn)
		return
	}
	respondJSON(c, http.StatusOK, toSessionResponse(sess))
}

// PreferencesRequest is the HTTP request body for updating UI
// preferences. Empty fields keep their current value.
type PreferencesRequest struct {
	Locale    string `json:"locale"`
	ColorMode string `json:"colorMode"`
}

// UpdatePreferences handles PUT /v1/session/preferences
func (h *SessionHandler) UpdatePreferences(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		respondError(c, service.ErrNotLoggedIn)
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Locale != "" {
		if !session.ValidLocale(req.Locale) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported locale"})
			return
		}
		sess.Locale = req.Locale
	}
	if req.ColorMode != "" {
		if !session.ValidColorMode(req.ColorMode) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported color mode"})
			return
		}
		sess.ColorMode = req.ColorMode
	}

	if err := h.store.Save(c.Request.Context(), sess); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toSessionResponse(sess))
}

// Delete handles DELETE /v1/session
func (h *SessionHandler) Delete(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.Status(http.StatusNoContent)
		return
	}
	h.stopPoller(sess.ID)
	if err := h.store.Delete(c.Request.Context(), sess.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Messages handles GET /v1/i18n. The locale defaults to the session's,
// then to Vietnamese.
func (h *SessionHandler) Messages(c *gin.Context) {
	locale := c.Query("locale")
	if locale == "" {
		if sess := middleware.SessionFrom(c); sess != nil {
			locale = sess.Locale
		}
	}
	if locale == "" {
		locale = i18n.VI
	}
	if !session.ValidLocale(locale) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported locale"})
		return
	}
	respondJSON(c, http.StatusOK, i18n.Table(locale))
}

// Locales handles GET /v1/i18n/locales
func (h *SessionHandler) Locales(c *gin.Context) {
	respondJSON(c, http.StatusOK, gin.H{"locales": i18n.Locales()})
}
