package domain

import "errors"

var (
	// Provider failure classes. The fetch layer translates upstream HTTP
	// and transport failures into exactly one of these; they never reach
	// the pure classification code, which only ever sees session lists.
	ErrAuthFailed          = errors.New("provider authentication failed")
	ErrRateLimited         = errors.New("provider rate limit exceeded")
	ErrProviderUnavailable = errors.New("provider unavailable")
)
