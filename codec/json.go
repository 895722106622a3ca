// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package codec

import "github.com/bytedance/sonic"

// api is frozen once. SortMapKeys keeps fingerprints stable across calls
// with the same kwargs; CopyString keeps decoded strings from pinning the
// payload buffer.
var api = sonic.Config{
	SortMapKeys: true,
	UseInt64:    true,
	CopyString:  true,
}.Froze()

// JSON is the default codec. Payload files carry a .json suffix.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	data, err := api.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return data, nil
}

func (JSON) Unmarshal(data []byte, v any) error {
	if err := api.Unmarshal(data, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func (JSON) Ext() string { return "json" }
