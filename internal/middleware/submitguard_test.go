package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type fakeLockClient struct {
	setNXResult bool
	setNXErr    error

	delCtx   context.Context
	delCount int
}

func (f *fakeLockClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(f.setNXResult, f.setNXErr)
}

func (f *fakeLockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.delCtx = ctx
	f.delCount++
	return redis.NewIntResult(1, nil)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func guardedRouter(client LockClient, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.POST("/wizard/:id/submit", SubmitGuardMiddleware(client), handler)
	return router
}

func TestSubmitGuard_ReleasesLockAfterClientDisconnect(t *testing.T) {
	t.Parallel()

	fake := &fakeLockClient{setNXResult: true}
	ctx, cancel := context.WithCancel(context.Background())
	router := guardedRouter(fake, func(c *gin.Context) {
		// The client goes away while the submission is in flight.
		cancel()
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/wizard/d1/submit", nil).WithContext(ctx)
	router.ServeHTTP(httptest.NewRecorder(), req)

	if fake.delCount != 1 {
		t.Fatalf("expected 1 lock release, got %d", fake.delCount)
	}
	if err := fake.delCtx.Err(); err != nil {
		t.Errorf("lock release must use a live context, got %v", err)
	}
}

func TestSubmitGuard_RejectsOverlappingSubmission(t *testing.T) {
	t.Parallel()

	fake := &fakeLockClient{setNXResult: false}
	router := guardedRouter(fake, func(c *gin.Context) {
		t.Error("handler must not run while the lock is held elsewhere")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wizard/d1/submit", nil))

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if fake.delCount != 0 {
		t.Errorf("a rejected request must not release the lock, got %d releases", fake.delCount)
	}
}

func TestSubmitGuard_FailsOpenWhenRedisUnavailable(t *testing.T) {
	t.Parallel()

	fake := &fakeLockClient{setNXErr: errors.New("connection refused")}
	handled := false
	router := guardedRouter(fake, func(c *gin.Context) {
		handled = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wizard/d1/submit", nil))

	if !handled {
		t.Error("expected the request to pass through when the guard is unavailable")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
