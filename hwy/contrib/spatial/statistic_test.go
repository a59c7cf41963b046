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
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatistic(t *testing.T) {
	tests := []struct {
		name string
		want Statistic
	}{
		{"contrast", Contrast},
		{"maximum", Maximum},
		{"max", Maximum},
		{"gradient", Gradient},
		{"minimum", Minimum},
		{"min", Minimum},
		{"mean", Mean},
		{"avg", Mean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatistic(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatistic_Invalid(t *testing.T) {
	for _, name := range []string{"", "Max", "MEAN", " min", "average", "median", "std"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseStatistic(name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidStatisticName), "errors.Is(%v, ErrInvalidStatisticName)", err)

			var nameErr *InvalidStatisticNameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, name, nameErr.Name)
			assert.Equal(t, Aliases(), nameErr.Accepted)
			assert.Contains(t, err.Error(), "avg")
		})
	}
}

func TestAliasesParse(t *testing.T) {
	seen := make(map[Statistic]bool)
	for _, alias := range Aliases() {
		stat, err := ParseStatistic(alias)
		require.NoError(t, err, alias)
		seen[stat] = true
	}
	assert.Len(t, seen, len(Statistics()), "every statistic should have a name")

	// Callers may not mutate the shared list.
	a := Aliases()
	a[0] = "changed"
	assert.Equal(t, "contrast", Aliases()[0])
}

func TestStatisticString(t *testing.T) {
	for _, stat := range Statistics() {
		assert.True(t, stat.Valid())
		parsed, err := ParseStatistic(stat.String())
		require.NoError(t, err)
		assert.Equal(t, stat, parsed)
	}
	assert.Equal(t, "Statistic(7)", Statistic(7).String())
	assert.Equal(t, "Statistic(-1)", Statistic(-1).String())
	assert.False(t, Statistic(-1).Valid())
	assert.False(t, Statistic(len(Statistics())).Valid())
}

func TestStatisticText(t *testing.T) {
	type config struct {
		Stat Statistic `json:"stat"`
	}

	var cfg config
	require.NoError(t, json.Unmarshal([]byte(`{"stat":"avg"}`), &cfg))
	assert.Equal(t, Mean, cfg.Stat)

	data, err := json.Marshal(config{Stat: Maximum})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stat":"maximum"}`, string(data))

	err = json.Unmarshal([]byte(`{"stat":"Mean"}`), &cfg)
	assert.True(t, errors.Is(err, ErrInvalidStatisticName), "got %v", err)

	_, err = Statistic(42).MarshalText()
	assert.True(t, errors.Is(err, ErrUnknownStatistic), "got %v", err)
}
