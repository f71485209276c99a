package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication covers missing cookies, rejected credentials,
	// transport failures and upstream non-2xx responses.
	ErrAuthentication = errors.New("authentication failed")
	ErrRoleDenied     = fmt.Errorf("%w: role not authorized", ErrAuthentication)
	ErrNoCookies      = fmt.Errorf("%w: no authentication cookies available", ErrAuthentication)
	ErrNotFound       = errors.New("domain not found")
)
