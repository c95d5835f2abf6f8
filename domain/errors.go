package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss will throw if the key is not cached
	ErrCacheMiss = errors.New("cache miss")
	// ErrStorageUnavailable wraps failures of the preference storage
	ErrStorageUnavailable = errors.New("preference storage unavailable")
	// ErrUpstream will throw if the blog source could not be read
	ErrUpstream = errors.New("failed to load blogs")
)
