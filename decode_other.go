//go:build !amd64 || appengine || noasm
// +build !amd64 appengine noasm

package rsonpath

import jsoniter "github.com/json-iterator/go"

var compatJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultDecode unmarshals one matched value's raw bytes into v, using
// json-iterator's portable decoder on platforms without the sonic
// amd64 fast path (see decode_amd64.go).
func defaultDecode(data []byte, v any) error {
	return compatJSON.Unmarshal(data, v)
}
