package sessions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"msa-backend/internal/shared/auth"
	"msa-backend/internal/shared/server/middleware"
	"msa-backend/internal/shared/telemetry"
)

const (
	stateKey   = "sessionState"
	managerKey = "sessionManager"

	DefaultCookieName = "msa_session"
)

// Manager binds a Store to the signed session cookie.
type Manager struct {
	Store      Store
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

func (m *Manager) cookieName() string {
	if m.CookieName == "" {
		return DefaultCookieName
	}
	return m.CookieName
}

// Middleware loads the session named by the cookie (or starts a new one),
// exposes it to handlers, and writes it back once the handler chain is done.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		st, fresh := m.load(c)
		c.Set(stateKey, st)
		c.Set(managerKey, m)
		if st.Authenticated() {
			middleware.SetUserID(c, st.User.ID)
		}
		if fresh {
			m.setCookie(c, st.ID)
		}

		c.Next()

		ctx := c.Request.Context()
		switch {
		case st.Destroyed:
			if err := m.Store.Delete(ctx, st.ID); err != nil {
				telemetry.Error("session.delete_failed", map[string]any{
					"request_id": middleware.RequestIDFromContext(c),
					"error":      err,
				})
			}
		case st.Modified:
			if err := m.Store.Save(ctx, st); err != nil {
				telemetry.Error("session.save_failed", map[string]any{
					"request_id": middleware.RequestIDFromContext(c),
					"user_id":    userID(st),
					"error":      err,
				})
			}
		}
	}
}

func (m *Manager) load(c *gin.Context) (*State, bool) {
	raw, err := c.Cookie(m.cookieName())
	if err == nil && raw != "" {
		claims, verr := auth.VerifySession(m.Secret, raw)
		if verr == nil {
			st, lerr := m.Store.Load(c.Request.Context(), claims.SessionID)
			if lerr == nil {
				return st, false
			}
			if !errors.Is(lerr, ErrNotFound) {
				telemetry.Error("session.load_failed", map[string]any{
					"request_id": middleware.RequestIDFromContext(c),
					"error":      lerr,
				})
			}
		}
	}
	return New(uuid.NewString()), true
}

func (m *Manager) setCookie(c *gin.Context, sessionID string) {
	token, err := auth.SignSession(m.Secret, sessionID, m.TTL)
	if err != nil {
		telemetry.Error("session.sign_failed", map[string]any{"error": err})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName(), token, int(m.TTL/time.Second), "/", "", m.Secure, true)
}

func (m *Manager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName(), "", -1, "/", "", m.Secure, true)
}

// FromContext returns the request's session. It is never nil behind the
// session middleware.
func FromContext(c *gin.Context) *State {
	val, ok := c.Get(stateKey)
	if !ok {
		return nil
	}
	st, _ := val.(*State)
	return st
}

// Renew moves the session to a new id, used on login so an id handed out
// before authentication is never reused afterwards.
func Renew(c *gin.Context) {
	st := FromContext(c)
	m := managerFrom(c)
	if st == nil || m == nil {
		return
	}
	old := st.ID
	st.ID = uuid.NewString()
	st.Modified = true
	m.setCookie(c, st.ID)
	if err := m.Store.Delete(c.Request.Context(), old); err != nil {
		telemetry.Warn("session.renew_delete_failed", map[string]any{"error": err})
	}
}

// Expire clears the cookie on the response. Callers clear the State itself.
func Expire(c *gin.Context) {
	if m := managerFrom(c); m != nil {
		m.clearCookie(c)
	}
}

func managerFrom(c *gin.Context) *Manager {
	val, ok := c.Get(managerKey)
	if !ok {
		return nil
	}
	m, _ := val.(*Manager)
	return m
}
