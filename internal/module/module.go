package module

import (
	"bufio"
	"io"
	"strconv"
)

const (
	prefix = "module.exports=["
	suffix = "];\n"
)

// Write renders buf as a Node.js module exporting the bytes as a decimal
// array, e.g. "module.exports=[1, 2, 3];".
func Write(w io.Writer, buf []byte) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(prefix)
	var num []byte
	for i, b := range buf {
		if i > 0 {
			bw.WriteString(", ")
		}
		num = strconv.AppendUint(num[:0], uint64(b), 10)
		bw.Write(num)
	}
	bw.WriteString(suffix)
	return bw.Flush()
}
