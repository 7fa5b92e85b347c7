package encoding

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// TestMarshalString verifies that MarshalString properly truncates or pads a string.
func TestMarshalString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pad   int
		want  string
	}{
		{"pads short input", "NO NAME", 11, "NO NAME    "},
		{"exact length", "FAT16   ", 8, "FAT16   "},
		{"truncates long input", "VERYLONGLABEL", 11, "VERYLONGLAB"},
		{"zero length", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(MarshalString(tt.input, tt.pad)))
		})
	}
}

func TestUnmarshalString(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"space padded", []byte("NOLABEL    "), "NOLABEL"},
		{"nul padded", []byte{'F', 'A', 'T', 0, 0, 0, 0, 0}, "FAT"},
		{"mixed padding", []byte{'A', ' ', 0, ' '}, "A"},
		{"inner spaces kept", []byte("MY DISK    "), "MY DISK"},
		{"full width", []byte("ABCDEFGHIJK"), "ABCDEFGHIJK"},
		{"all padding", []byte("        "), ""},
		{"empty", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnmarshalString(tt.data))
		})
	}
}

// The source slice is the only bound on the result, even when no NUL is present.
func TestUnmarshalString_DoesNotReadPastField(t *testing.T) {
	backing := []byte("NOLABEL    FAT12   ")
	label := UnmarshalString(backing[:11])
	assert.Equal(t, "NOLABEL", label)
}

func TestDecodeOEMString(t *testing.T) {
	assert.Equal(t, "NOLABEL    ", DecodeOEMString([]byte("NOLABEL    ")))

	// 0x81 is u-umlaut and 0xDB is a full block in CP437.
	got := DecodeOEMString([]byte{'M', 0x81, 'L', 0xDB})
	assert.Equal(t, "MüL█", got)
	assert.Equal(t, 4, utf8.RuneCountInString(got))
}
