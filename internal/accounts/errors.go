package accounts

import "errors"

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrNetworkIDRequired  = errors.New("network id is required")
)
