package encoding

import (
	"strings"

	"github.com/bgrewell/fatread/pkg/consts"
	"golang.org/x/text/encoding/charmap"
)

// MarshalString encodes the given string as a byte array padded to the given length
func MarshalString(s string, padToLength int) []byte {
	if len(s) > padToLength {
		s = s[:padToLength]
	}
	missingPadding := padToLength - len(s)
	s = s + strings.Repeat(consts.FAT_FILLER, missingPadding)
	return []byte(s)
}

// UnmarshalString returns the text held in a fixed-width field with any trailing spaces or NUL bytes removed. The
// length is bounded by the slice; the data is never scanned for a terminator.
func UnmarshalString(data []byte) string {
	end := len(data)
	for end > 0 && (data[end-1] == ' ' || data[end-1] == 0x00) {
		end--
	}
	return string(data[:end])
}

// DecodeOEMString converts a fixed-width field written in the IBM PC OEM code page (437) to UTF-8 for display.
// Every byte maps to exactly one rune, so the result always has len(data) runes.
func DecodeOEMString(data []byte) string {
	out, err := charmap.CodePage437.NewDecoder().Bytes(data)
	if err != nil {
		// CP437 defines all 256 code points so this is unreachable in practice.
		return string(data)
	}
	return string(out)
}
