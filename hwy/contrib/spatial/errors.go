// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spatial

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidStatisticName is matched by errors returned when a name does
	// not parse to a Statistic.
	ErrInvalidStatisticName = errors.New("invalid statistic name")

	// ErrUnknownStatistic reports a Statistic value outside the enumeration.
	ErrUnknownStatistic = errors.New("unknown statistic")

	// ErrDimensionMismatch reports a negative dimension or a buffer whose
	// length disagrees with width*height.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrRadiusOutOfRange reports a radius rejected by CheckRadius.
	ErrRadiusOutOfRange = errors.New("radius out of range")
)

// InvalidStatisticNameError is returned by ParseStatistic for a name that is
// not one of Accepted.
type InvalidStatisticNameError struct {
	Name     string
	Accepted []string
}

func (e *InvalidStatisticNameError) Error() string {
	return fmt.Sprintf("%s %q (accepted: %s)", ErrInvalidStatisticName, e.Name, strings.Join(e.Accepted, ", "))
}

// Is reports whether target is ErrInvalidStatisticName.
func (e *InvalidStatisticNameError) Is(target error) bool {
	return target == ErrInvalidStatisticName
}
