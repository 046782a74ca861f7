package module

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, []byte{0x11, 0x00, 0xFF}))
	require.Equal(t, "module.exports=[17, 0, 255];\n", out.String())
}

func TestWriteEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, nil))
	require.Equal(t, "module.exports=[];\n", out.String())
}
