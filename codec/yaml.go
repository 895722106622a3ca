// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package codec

import "gopkg.in/yaml.v3"

// YAML persists payloads as YAML documents with a .yaml suffix. Handy
// when cached results should be readable (or hand-editable) on disk.
type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return data, nil
}

func (YAML) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func (YAML) Ext() string { return "yaml" }
