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

	"github.com/pkg/errors"
)

// Statistic selects the summary computed over each window.
type Statistic int

const (
	// Contrast is (max-min)/(max+min+1) in the sample type's integer
	// arithmetic.
	Contrast Statistic = iota
	// Maximum is the largest sample in the window.
	Maximum
	// Gradient is the spread max-min.
	Gradient
	// Minimum is the smallest sample in the window.
	Minimum
	// Mean is the truncated arithmetic mean.
	Mean
)

const numStatistics = int(Mean) + 1

var statisticNames = [numStatistics]string{
	Contrast: "contrast",
	Maximum:  "maximum",
	Gradient: "gradient",
	Minimum:  "minimum",
	Mean:     "mean",
}

// aliases lists every accepted name in Statistic order, canonical name first.
var aliases = []string{
	"contrast",
	"maximum", "max",
	"gradient",
	"minimum", "min",
	"mean", "avg",
}

// ParseStatistic returns the Statistic for a canonical name or alias.
// Matching is exact and case-sensitive.
func ParseStatistic(name string) (Statistic, error) {
	switch name {
	case "contrast":
		return Contrast, nil
	case "maximum", "max":
		return Maximum, nil
	case "gradient":
		return Gradient, nil
	case "minimum", "min":
		return Minimum, nil
	case "mean", "avg":
		return Mean, nil
	}
	return 0, &InvalidStatisticNameError{Name: name, Accepted: Aliases()}
}

// Statistics returns every Statistic in enumeration order.
func Statistics() []Statistic {
	stats := make([]Statistic, numStatistics)
	for i := range stats {
		stats[i] = Statistic(i)
	}
	return stats
}

// Aliases returns every name ParseStatistic accepts.
func Aliases() []string {
	return append([]string(nil), aliases...)
}

// Valid reports whether s is one of the defined statistics.
func (s Statistic) Valid() bool {
	return s >= 0 && int(s) < numStatistics
}

// String returns the canonical name of s.
func (s Statistic) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Statistic(%d)", int(s))
	}
	return statisticNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Statistic) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrUnknownStatistic, "marshal %s", s)
	}
	return []byte(statisticNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Statistic) UnmarshalText(text []byte) error {
	parsed, err := ParseStatistic(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
