package server

import (
	"github.com/gin-gonic/gin"

	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	st := sessions.FromContext(c)
	response := gin.H{
		"userId":   st.User.ID,
		"username": st.User.Username,
		"role":     st.User.Role,
	}
	if st.NetworkID != "" {
		response["aribaNetworkId"] = st.NetworkID
	}
	respond.OK(c, response)
}
