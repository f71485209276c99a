// Package gateway talks to the external ticket-system API that owns user
// accounts and company domain records.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"msa-backend/internal/shared/telemetry"
)

const defaultAllowedRole = "BUSINESS_DEVELOPMENT_USER"

// Client is a thin JSON client. Every failure is reported as
// ErrAuthentication or ErrNotFound; transport errors are wrapped.
type Client struct {
	baseURL     string
	allowedRole string
	httpClient  *http.Client
}

func NewClient(baseURL, allowedRole string, timeout time.Duration) *Client {
	if strings.TrimSpace(allowedRole) == "" {
		allowedRole = defaultAllowedRole
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		allowedRole: allowedRole,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Login checks credentials, then fetches the role with the returned cookies.
// A valid login whose role is not the allowed one fails with ErrRoleDenied.
func (c *Client) Login(ctx context.Context, username, password string) (UserSession, error) {
	fields := map[string]any{"username": username}

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return UserSession{}, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", nil, bytes.NewReader(body))
	if err != nil {
		fields["error"] = err
		telemetry.Warn("gateway.login_failed", fields)
		return UserSession{}, err
	}
	var login loginResponse
	if err := decodeJSON(resp, &login); err != nil {
		return UserSession{}, err
	}
	cookies := make(map[string]string)
	for _, ck := range resp.Cookies() {
		cookies[ck.Name] = ck.Value
	}
	if len(cookies) == 0 {
		telemetry.Warn("gateway.login_failed", map[string]any{"username": username, "error": ErrNoCookies})
		return UserSession{}, ErrNoCookies
	}

	roleResp, err := c.do(ctx, http.MethodGet, "/auth/role", cookies, nil)
	if err != nil {
		fields["error"] = err
		telemetry.Warn("gateway.role_failed", fields)
		return UserSession{}, err
	}
	var role roleResponse
	if err := decodeJSON(roleResp, &role); err != nil {
		return UserSession{}, err
	}
	if role.UserRole != c.allowedRole {
		fields["role"] = role.UserRole
		telemetry.Warn("gateway.role_denied", fields)
		return UserSession{}, fmt.Errorf("%w: %q", ErrRoleDenied, role.UserRole)
	}

	id := firstID(login.User["id"], login.User["userId"], role.ID, role.UserID)
	if id == "" {
		telemetry.Error("gateway.user_id_missing", fields)
		return UserSession{}, fmt.Errorf("%w: user id not provided by API", ErrAuthentication)
	}
	name := stringify(login.User["username"])
	if name == "" {
		name = username
	}

	telemetry.Info("gateway.login_succeeded", map[string]any{"username": name, "user_id": id, "role": role.UserRole})
	return UserSession{ID: id, Username: name, Role: role.UserRole, Cookies: cookies}, nil
}

// FetchDomain finds the first domain record for networkID and returns its
// full record.
func (c *Client) FetchDomain(ctx context.Context, cookies map[string]string, networkID string) (DomainRecord, error) {
	if len(cookies) == 0 {
		return nil, ErrNoCookies
	}
	fields := map[string]any{"network_id": networkID}

	query := url.Values{}
	query.Set("index", "0")
	query.Set("limit", "10")
	query.Set("aribaNetworkId", networkID)
	resp, err := c.do(ctx, http.MethodGet, "/domain?"+query.Encode(), cookies, nil)
	if err != nil {
		fields["error"] = err
		telemetry.Error("gateway.domain_list_failed", fields)
		return nil, err
	}
	var list []DomainRecord
	if err := decodeJSON(resp, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		telemetry.Warn("gateway.domain_not_found", fields)
		return nil, ErrNotFound
	}
	id := list[0].ID()
	if id == "" {
		telemetry.Error("gateway.domain_id_missing", fields)
		return nil, ErrNotFound
	}

	resp, err = c.do(ctx, http.MethodGet, "/domain/"+url.PathEscape(id), cookies, nil)
	if err != nil {
		fields["error"] = err
		telemetry.Error("gateway.domain_fetch_failed", fields)
		return nil, err
	}
	var record DomainRecord
	if err := decodeJSON(resp, &record); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	telemetry.Info("gateway.domain_fetched", map[string]any{"network_id": networkID, "domain_id": id})
	return record, nil
}

// FetchNetworkIDs lists the network ids visible to the session. Failures
// are logged and yield an empty slice.
func (c *Client) FetchNetworkIDs(ctx context.Context, cookies map[string]string, userID string) []string {
	fields := map[string]any{"user_id": userID}
	if len(cookies) == 0 {
		fields["error"] = ErrNoCookies
		telemetry.Error("gateway.network_ids_failed", fields)
		return []string{}
	}
	resp, err := c.do(ctx, http.MethodGet, "/domain?index=0&limit=100", cookies, nil)
	if err != nil {
		fields["error"] = err
		telemetry.Error("gateway.network_ids_failed", fields)
		return []string{}
	}
	var list []DomainRecord
	if err := decodeJSON(resp, &list); err != nil {
		fields["error"] = err
		telemetry.Error("gateway.network_ids_failed", fields)
		return []string{}
	}
	ids := make([]string, 0, len(list))
	for _, d := range list {
		if id := d.NetworkID(); id != "" {
			ids = append(ids, id)
		}
	}
	fields["count"] = len(ids)
	telemetry.Info("gateway.network_ids_fetched", fields)
	return ids
}

// do sends one request. Non-2xx responses are drained and reported as
// ErrAuthentication; on success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path string, cookies map[string]string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrAuthentication, method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s: status %d: %s", ErrAuthentication, method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return resp, nil
}

func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrAuthentication, err)
	}
	return nil
}
