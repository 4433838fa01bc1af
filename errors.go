// SPDX-License-Identifier: EPL-2.0

package waveviz

import "errors"

var (
	// ErrUnsupportedFormat is returned when no decoder claims the input
	// file, or the claimed decoder cannot parse it.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrInvalidConfiguration is returned for out-of-range or
	// unrecognized configuration values.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
