package swfdata

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeString decodes a raw string from a movie's byte stream.
// Movies before version 6 store strings in the platform's legacy
// single-byte encoding, decoded here as Windows-1252; version 6 and
// later are UTF-8, with invalid sequences replaced.
func DecodeString(raw []byte, swfVersion uint8) string {
	if swfVersion < 6 {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			// Windows-1252 decodes every byte; kept for interface
			// completeness.
			return string(raw)
		}
		return string(decoded)
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
