package chat

import "errors"

// ErrValidation indicates missing or malformed required fields. Handlers map
// it to a 400 response.
var ErrValidation = errors.New("validation error")
