package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"msa-backend/internal/gateway"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/server/middleware"
	"msa-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches login and logout. loginGuards run before
// the login handler (rate limiting).
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup, loginGuards ...gin.HandlerFunc) {
	rg.POST("/login", append(loginGuards, h.login)...)
	rg.POST("/logout", h.logout)
	rg.GET("/logout", h.logout)
}

// RegisterRoutes attaches the routes that need a logged-in user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/form", h.form)
	rg.POST("/domain-data", h.domainData)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid login body", nil)
		return
	}
	st := sessions.FromContext(c)
	user, err := h.Svc.Login(c.Request.Context(), st, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Username and password are required.", nil)
		case errors.Is(err, gateway.ErrRoleDenied):
			respond.Error(c, http.StatusUnauthorized, "authentication_failed", "Access denied: user role is not authorized.", nil)
		default:
			respond.Error(c, http.StatusUnauthorized, "authentication_failed", "Authentication failed.", nil)
		}
		return
	}
	// A fresh id after login keeps a pre-login cookie from being reused.
	sessions.Renew(c)
	middleware.SetUserID(c, user.ID)
	respond.OK(c, userResponse{ID: user.ID, Username: user.Username, Role: user.Role})
}

func (h *Handler) logout(c *gin.Context) {
	st := sessions.FromContext(c)
	h.Svc.Logout(c.Request.Context(), st)
	sessions.Expire(c)
	respond.OK(c, gin.H{"loggedOut": true})
}

func (h *Handler) form(c *gin.Context) {
	view := h.Svc.Form(c.Request.Context(), sessions.FromContext(c))
	respond.OK(c, formResponse{
		Data:              view.Data,
		NetworkIDs:        view.NetworkIDs,
		SelectedNetworkID: view.SelectedNetworkID,
		Warning:           view.Warning,
	})
}

func (h *Handler) domainData(c *gin.Context) {
	var req domainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	record, err := h.Svc.SelectDomain(c.Request.Context(), sessions.FromContext(c), req.NetworkID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNetworkIDRequired):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Ariba Network ID is required", gin.H{"field": "aribaNetworkId"})
		case errors.Is(err, gateway.ErrNotFound):
			respond.NotFound(c, "No domain data found")
		default:
			respond.Error(c, http.StatusBadGateway, "gateway_error", "Error fetching domain data", nil)
		}
		return
	}
	respond.OK(c, domainResponse{Success: true, DomainData: record})
}
