package hexfield

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestEncodeField(t *testing.T) {
	tests := []struct {
		value     uint64
		byteWidth int
		expected  string
	}{
		{0, 1, "00"},
		{1, 4, "00000001"},
		{2, 4, "00000002"},
		{255, 1, "ff"},
		{256, 2, "0100"},
		{0x5db8c0ff, 4, "5db8c0ff"},
		{math.MaxUint32, 4, "ffffffff"},
		{math.MaxUint64, 8, "ffffffffffffffff"},
		{1, 8, "0000000000000001"},
	}

	for i, test := range tests {
		result, err := EncodeField(test.value, test.byteWidth)
		if err != nil {
			t.Errorf("%d: EncodeField(%d, %d): unexpected error: %v",
				i, test.value, test.byteWidth, err)
			continue
		}
		if result != test.expected {
			t.Errorf("%d: EncodeField(%d, %d): got %q, want %q",
				i, test.value, test.byteWidth, result, test.expected)
		}
		if len(result) != test.byteWidth*2 {
			t.Errorf("%d: EncodeField(%d, %d): got length %d, want %d",
				i, test.value, test.byteWidth, len(result), test.byteWidth*2)
		}
	}
}

func TestEncodeFieldErrors(t *testing.T) {
	tests := []struct {
		value     uint64
		byteWidth int
	}{
		{256, 1},
		{math.MaxUint32 + 1, 4},
		{1, 0},
		{1, -1},
	}

	for i, test := range tests {
		result, err := EncodeField(test.value, test.byteWidth)
		if err == nil {
			t.Errorf("%d: EncodeField(%d, %d): expected an error, got %q",
				i, test.value, test.byteWidth, result)
			continue
		}
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%d: EncodeField(%d, %d): error %v doesn't wrap ErrEncoding",
				i, test.value, test.byteWidth, err)
		}
	}
}

func TestReverseByteOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ab", "ab"},
		{"0a0b0c", "0c0b0a"},
		{"00000002", "02000000"},
		{"5db8c0ff", "ffc0b85d"},
		{"0000ffff", "ffff0000"},
	}

	for i, test := range tests {
		result, err := ReverseByteOrder(test.input)
		if err != nil {
			t.Errorf("%d: ReverseByteOrder(%q): unexpected error: %v", i, test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("%d: ReverseByteOrder(%q): got %q, want %q",
				i, test.input, result, test.expected)
		}

		// Reversing twice must give back the input.
		roundTrip, err := ReverseByteOrder(result)
		if err != nil {
			t.Errorf("%d: ReverseByteOrder(%q): unexpected error: %v", i, result, err)
			continue
		}
		if roundTrip != test.input {
			t.Errorf("%d: ReverseByteOrder round-trip of %q: got %q",
				i, test.input, roundTrip)
		}
	}
}

func TestReverseByteOrderOddLength(t *testing.T) {
	_, err := ReverseByteOrder("abc")
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("ReverseByteOrder(\"abc\"): got %v, want an ErrEncoding", err)
	}
}

func TestHexToBig(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"00000000", 0},
		{"1", 1},
		{"ff", 255},
		{"FF", 255},
		{"0100", 256},
		{"5db8c0ff", 0x5db8c0ff},
	}

	for i, test := range tests {
		result, err := HexToBig(test.input)
		if err != nil {
			t.Errorf("%d: HexToBig(%q): unexpected error: %v", i, test.input, err)
			continue
		}
		if result.Int64() != test.expected {
			t.Errorf("%d: HexToBig(%q): got %s, want %d",
				i, test.input, result, test.expected)
		}
	}

	for i, input := range []string{"", "zz", "0x10", "-ff"} {
		_, err := HexToBig(input)
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%d: HexToBig(%q): got %v, want an ErrEncoding", i, input, err)
		}
	}
}
