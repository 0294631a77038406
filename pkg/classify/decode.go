// File: pkg/classify/decode.go
package classify

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// cp1252Undefined are the Windows-1252 code points with no assigned character.
// Strict decoding rejects them.
var cp1252Undefined = [256]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

// decodeText tries each supported encoding in order and returns the decoded
// text together with the encoding name. The last decode error is returned
// when every encoding fails.
func decodeText(data []byte) (string, string, error) {
	var lastErr error
	for _, enc := range Encodings {
		text, err := decodeAs(enc, data)
		if err == nil {
			return normalizeNewlines(text), enc, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}

func decodeAs(enc string, data []byte) (string, error) {
	switch enc {
	case PrimaryEncoding:
		return decodeUTF8(data)
	case FallbackEncoding:
		return decodeCP1252(data)
	}
	return "", &DecodeError{Encoding: enc, Reason: "unsupported encoding"}
}

func decodeUTF8(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &DecodeError{Encoding: PrimaryEncoding, Offset: i, Byte: data[i], Reason: "invalid utf-8 sequence"}
		}
		i += size
	}
	return string(data), nil
}

func decodeCP1252(data []byte) (string, error) {
	for i, b := range data {
		if cp1252Undefined[b] {
			return "", &DecodeError{Encoding: FallbackEncoding, Offset: i, Byte: b, Reason: "character maps to <undefined>"}
		}
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Encoding: FallbackEncoding, Reason: err.Error()}
	}
	return string(out), nil
}

// normalizeNewlines converts "\r\n" and lone "\r" to "\n" and drops a single
// trailing line break.
func normalizeNewlines(s string) string {
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return strings.TrimSuffix(s, "\n")
}

// isLikelyBinary reports whether the null-byte share of chunk exceeds the
// threshold.
func isLikelyBinary(chunk []byte) bool {
	if len(chunk) == 0 {
		return false
	}
	nulls := bytes.Count(chunk, []byte{0})
	return float64(nulls)/float64(len(chunk))*100 > NullThresholdPercent
}
