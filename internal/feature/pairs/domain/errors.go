// Package domain defines domain-level errors for the pairs feature.
package domain

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable indicates that pair data could not be obtained from the market-data source.
// The underlying cause (network, non-2xx status, decode failure) is wrapped.
var ErrDataUnavailable = errors.New("pair data unavailable")

// UpstreamStatusError is returned when the market-data source answers with a non-2xx status.
type UpstreamStatusError struct {
	Source     string
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s http %d", e.Source, e.StatusCode)
}
