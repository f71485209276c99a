package signatures

import "errors"

// ErrInvalidSignature wraps every reason a signature could not be stored.
var ErrInvalidSignature = errors.New("invalid signature")
