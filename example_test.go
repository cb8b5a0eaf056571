package parcelval_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/droidwire/parcelval"
)

func word(buf *bytes.Buffer, v int32) {
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], uint32(v))
	buf.Write(w[:])
}

func Example() {
	// A reply container with one entry: "ids" -> int64 array [7, 42].
	var buf bytes.Buffer
	word(&buf, 1)                      // presence flag
	word(&buf, 8+8+24)                 // payload length: magic, count, entry
	word(&buf, parcelval.MagicJava)    // producer marker
	word(&buf, 1)                      // entry count
	word(&buf, 3)                      // key length
	buf.WriteString("ids\x00")         // key, padded to the word boundary
	word(&buf, int32(parcelval.KindLongArray))
	word(&buf, 2)
	for _, v := range []int64{7, 42} {
		word(&buf, int32(v))
		word(&buf, 0)
	}

	b, err := parcelval.ReadBundle(parcelval.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	ids, _ := b["ids"].Longs()
	fmt.Println(ids)
	// Output: [7 42]
}
