package utils

import (
	"bytes"
	"unicode/utf8"
)

// sniffLength defines the maximum number of leading bytes searched for NUL bytes.
const sniffLength = 8000

// IsBinary reports whether the provided byte slice appears to contain binary data.
// Data is binary when it is not valid UTF-8 or when its leading bytes contain a NUL byte.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sniffed := data
	if len(sniffed) > sniffLength {
		sniffed = sniffed[:sniffLength]
	}
	if bytes.IndexByte(sniffed, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}
