// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import "github.com/pkg/errors"

var (
	// ErrParameterValue reports an invalid bound or parameter value
	// passed to a constructor or mutator: a non-finite value, a
	// value outside its admissible range, or lbound >= ubound.
	ErrParameterValue = errors.New("prior: invalid parameter value")

	// ErrBadParameter reports a distribution-specific validation
	// failure, such as a non-positive Pareto shape.
	ErrBadParameter = errors.New("prior: bad parameter")

	// ErrIndex reports a parameter index or name that does not
	// exist. Only the checked accessors (ParamAt, SetParamAt,
	// ParamByName, SetParamByName) return it.
	ErrIndex = errors.New("prior: parameter index out of range")
)

// IsParameterError reports whether err is caused by an invalid
// parameter or bound value.
func IsParameterError(err error) bool {
	return errors.Is(err, ErrParameterValue) || errors.Is(err, ErrBadParameter)
}
