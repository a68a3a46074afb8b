package customerr

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is returned by a converter asked for a currency it does not handle.
	ErrUnsupported = errors.New("currency is not supported")
	// ErrUnavailable means no rate could be obtained from the cache or the network.
	ErrUnavailable = errors.New("rates are unavailable")
	// ErrCacheMiss marks an absent, expired or corrupt cache entry.
	ErrCacheMiss = errors.New("cache miss")
)

// NetworkError is a transport, timeout or HTTP status failure. It is worth retrying.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError is a malformed or incomplete API response. Retrying will not help.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CacheWriteError is an I/O failure while persisting rates.
type CacheWriteError struct {
	Err error
}

func (e *CacheWriteError) Error() string {
	return "cache write: " + e.Err.Error()
}

func (e *CacheWriteError) Unwrap() error {
	return e.Err
}

func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// UnavailableError matches ErrUnavailable and keeps the last failure that led to it.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return ErrUnavailable.Error() + ": " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
