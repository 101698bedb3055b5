// Package io loads NTRUEncrypt parameter overrides from JSON, for the
// CLI's -params flag. It accepts a subset of Params fields; anything
// left unset in the JSON keeps the base preset's value.
package io

import (
	"encoding/json"
	"fmt"
	"os"
)

// Overrides mirrors the subset of ntru.Params a caller may want to
// tweak from a config file without recompiling a new preset.
type Overrides struct {
	N            *int   `json:"N,omitempty"`
	Q            *int64 `json:"Q,omitempty"`
	Df           *int   `json:"df,omitempty"`
	Dg           *int   `json:"dg,omitempty"`
	Dr           *int   `json:"dr,omitempty"`
	Db           *int   `json:"db,omitempty"`
	Dm0          *int   `json:"dm0,omitempty"`
	MinCallsR    *int   `json:"minCallsR,omitempty"`
	MinCallsMask *int   `json:"minCallsMask,omitempty"`
	Sparse       *bool  `json:"sparse,omitempty"`
	FastFp       *bool  `json:"fastFp,omitempty"`
}

// LoadOverrides reads a JSON overrides document from path.
func LoadOverrides(path string) (Overrides, error) {
	var o Overrides
	data, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parsing %s: %w", path, err)
	}
	return o, nil
}
