// Package accounts owns the session lifecycle: gateway login, logout with
// artifact teardown, and the form prefill backed by domain records.
package accounts

import (
	"context"
	"errors"
	"strings"

	"msa-backend/agreement/model"
	"msa-backend/internal/artifacts"
	"msa-backend/internal/gateway"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/metrics"
	"msa-backend/internal/shared/telemetry"
)

// Gateway is the part of the auth API client the account flows need.
type Gateway interface {
	Login(ctx context.Context, username, password string) (gateway.UserSession, error)
	FetchDomain(ctx context.Context, cookies map[string]string, networkID string) (gateway.DomainRecord, error)
	FetchNetworkIDs(ctx context.Context, cookies map[string]string, userID string) []string
}

type Service struct {
	Gateway  Gateway
	Registry *artifacts.Registry
}

func NewService(gw Gateway, reg *artifacts.Registry) *Service {
	return &Service{Gateway: gw, Registry: reg}
}

// FormView is what the client needs to render the agreement form.
type FormView struct {
	Data              map[string]string
	NetworkIDs        []string
	SelectedNetworkID string
	Warning           string
}

// Login authenticates against the gateway and stores the identity on st.
func (s *Service) Login(ctx context.Context, st *sessions.State, username, password string) (sessions.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		metrics.IncLoginFailed()
		return sessions.User{}, ErrMissingCredentials
	}
	us, err := s.Gateway.Login(ctx, username, password)
	if err != nil {
		metrics.IncLoginFailed()
		return sessions.User{}, err
	}
	user := sessions.User{ID: us.ID, Username: us.Username, Role: us.Role}
	st.SetUser(user, us.Cookies)
	metrics.IncLoginSucceeded()
	telemetry.Info("accounts.login", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

// Logout deletes every file the session produced and clears it.
func (s *Service) Logout(ctx context.Context, st *sessions.State) {
	fields := map[string]any{"session_authenticated": st.Authenticated()}
	if st.User != nil {
		fields["user_id"] = st.User.ID
	}
	s.Registry.Teardown(ctx, st)
	telemetry.Info("accounts.logout", fields)
}

// Form merges the cached form values with the selected domain record and
// caches the result back on st. Domain lookup failures degrade to a warning.
func (s *Service) Form(ctx context.Context, st *sessions.State) FormView {
	data := make(map[string]string, len(model.RequiredFields))
	for _, field := range model.RequiredFields {
		data[field] = ""
	}
	for k, v := range st.FormData {
		data[k] = v
	}

	view := FormView{SelectedNetworkID: st.NetworkID}
	if st.NetworkID != "" {
		record, err := s.Gateway.FetchDomain(ctx, st.Cookies, st.NetworkID)
		if err != nil {
			fields := map[string]any{"network_id": st.NetworkID, "error": err}
			if errors.Is(err, gateway.ErrNotFound) {
				telemetry.Warn("accounts.domain_missing", fields)
			} else {
				telemetry.Error("accounts.domain_failed", fields)
			}
			view.Warning = "No domain data found for Ariba Network ID: " + st.NetworkID + ". Please enter manually."
		} else {
			for k, v := range record.FormValues() {
				data[k] = v
			}
		}
	}
	st.SetFormData(data)

	userID := ""
	if st.User != nil {
		userID = st.User.ID
	}
	view.Data = data
	view.NetworkIDs = s.Gateway.FetchNetworkIDs(ctx, st.Cookies, userID)
	return view
}

// SelectDomain fetches the record for networkID and remembers the selection.
func (s *Service) SelectDomain(ctx context.Context, st *sessions.State, networkID string) (gateway.DomainRecord, error) {
	networkID = strings.TrimSpace(networkID)
	if networkID == "" {
		return nil, ErrNetworkIDRequired
	}
	record, err := s.Gateway.FetchDomain(ctx, st.Cookies, networkID)
	if err != nil {
		return nil, err
	}
	st.SetNetworkID(networkID)
	return record, nil
}
