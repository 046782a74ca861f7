package record

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	r, err := Decode(":10100000112233445566778899AABBCCDDEEFF00")
	require.NoError(t, err)
	require.Equal(t, byte(0x10), r.ByteCount)
	require.Equal(t, uint16(0x1000), r.Address)
	require.Equal(t, TypeData, r.Type)
	require.True(t, r.IsData())
	require.Equal(t, []byte{
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00,
	}, r.Data)
	require.Equal(t, "", r.Checksum)
}

func TestDecodeEOF(t *testing.T) {
	r, err := Decode(":00000001FF")
	require.NoError(t, err)
	require.Equal(t, TypeEOF, r.Type)
	require.False(t, r.IsData())
	require.Empty(t, r.Data)
	require.Equal(t, "FF", r.Checksum)
	require.Equal(t, byte(0xFF), r.ComputeChecksum())
}

func TestDecodeLengthRoundTrip(t *testing.T) {
	lines := []string{
		":00000001FF",
		":0210000001020B",
		":10010000214601360121470136007EFE09D2190140",
		":04000004000A0000EE",
	}
	for _, line := range lines {
		r, err := Decode(line)
		require.NoError(t, err, line)
		require.Len(t, r.Data, int(r.ByteCount), line)
		require.Equal(t, line, r.Raw)
	}
}

func TestDecodeChecksum(t *testing.T) {
	r, err := Decode(":10010000214601360121470136007EFE09D2190140")
	require.NoError(t, err)
	require.Equal(t, "40", r.Checksum)
	require.Equal(t, byte(0x40), r.ComputeChecksum())
}

func TestDecodeChecksumIgnored(t *testing.T) {
	r, err := Decode(":0210000001020Z")
	require.NoError(t, err)
	require.Equal(t, "0Z", r.Checksum)

	r, err = Decode(":0210000001020")
	require.NoError(t, err)
	require.Equal(t, "0", r.Checksum)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		field string
	}{
		{name: "empty", line: ""},
		{name: "no marker", line: "abc"},
		{name: "marker only", line: ":", field: "byte count"},
		{name: "bad count", line: ":G0100000", field: "byte count"},
		{name: "short address", line: ":0010", field: "address"},
		{name: "bad address", line: ":0010X00000", field: "address"},
		{name: "bad type", line: ":001000ZZ", field: "record type"},
		{name: "data overrun", line: ":FF100000" + strings.Repeat("00", 4), field: "data byte 4"},
		{name: "bad data", line: ":0210000001QQ0B", field: "data byte 1"},
		{name: "signed data", line: ":01100000+100", field: "data byte 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.line)
			require.Error(t, err)
			var ferr *FormatError
			require.True(t, errors.As(err, &ferr))
			require.Equal(t, tc.field, ferr.Field)
			require.Zero(t, ferr.Line)
		})
	}
}

func TestDecodeMissingMarkerMessage(t *testing.T) {
	_, err := Decode("10100000")
	require.EqualError(t, err, "invalid hex format: missing record marker")
}

func TestFormatErrorLine(t *testing.T) {
	err := &FormatError{Line: 3, Field: "address", Msg: "line too short"}
	require.Equal(t, "invalid hex format at line 3: address: line too short", err.Error())
}
