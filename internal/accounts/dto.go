package accounts

import "msa-backend/internal/gateway"

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type formResponse struct {
	Data              map[string]string `json:"data"`
	NetworkIDs        []string          `json:"aribaNetworkIds"`
	SelectedNetworkID string            `json:"selectedAribaNetworkId"`
	Warning           string            `json:"warning,omitempty"`
}

type domainRequest struct {
	NetworkID string `json:"aribaNetworkId"`
}

type domainResponse struct {
	Success    bool                 `json:"success"`
	DomainData gateway.DomainRecord `json:"domain_data"`
}
