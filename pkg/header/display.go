package header

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const ruleWidth = 43

// Show prints the header to stdout, one line per field.
func (r *Raw) Show() {
	_ = r.Dump(os.Stdout)
}

// Dump writes the field table to w:
//
//	#### Vlan             Size   Data
//	-------------------------------------------
//	pcp                 :    3 : 00
//	cfi                 :    1 : 00
//	vid                 :   12 : 00 0a
//	etype               :   16 : 08 00
//
// Fields up to 8 bits print as one byte. Byte-multiple fields print every
// byte followed by a space. Other fields print their whole bytes from Start
// and then Bits(End, End-r) as a final byte, r being the leftover width.
func (r *Raw) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#### %-16s %s %s\n", r.schema.name, "Size  ", "Data")
	fmt.Fprintln(bw, strings.Repeat("-", ruleWidth))
	for _, f := range r.schema.fields {
		fmt.Fprintf(bw, "%-20s: %4d : ", f.Name, f.Size())
		r.dumpField(bw, f)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (r *Raw) dumpField(w io.Writer, f Field) {
	width := f.Size()
	if width <= 8 {
		fmt.Fprintf(w, "%02x", uint8(r.Bits(f.End, f.Start)))
		return
	}

	full := width / 8
	for i := f.Start; i < f.Start+full*8; i += 8 {
		fmt.Fprintf(w, "%02x ", uint8(r.Bits(i+7, i)))
	}
	if rem := width % 8; rem != 0 {
		fmt.Fprintf(w, "%02x", uint8(r.Bits(f.End, f.End-rem)))
	}
}

func (r *Raw) String() string {
	var sb strings.Builder
	_ = r.Dump(&sb)
	return sb.String()
}
