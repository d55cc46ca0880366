package unique

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
)

// canonical renders values without addresses or capacities so that equal
// values print equally. String and Error methods are honored.
var canonical = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// Fingerprint returns a 64-bit digest of v, stable across calls for equal values.
//
// The digest covers the dynamic type of v, so int(5) and int64(5) differ.
// Signed integers then hash their bit pattern at their own width, strings hash
// their UTF-8 bytes, anything else hashes its canonical textual dump. Values
// of other types must therefore render deterministically.
// Collisions are possible, this is duplicate detection and nothing more.
func Fingerprint(v any) uint64 {
	d := xxhash.New()
	writeType(d, reflect.TypeOf(v))

	var buf [8]byte

	switch x := v.(type) {
	case string:
		_, _ = d.WriteString(x)
	case int8:
		_, _ = d.Write([]byte{byte(x)})
	case int16:
		binary.LittleEndian.PutUint16(buf[:], uint16(x))
		_, _ = d.Write(buf[:2])
	case int32:
		binary.LittleEndian.PutUint32(buf[:], uint32(x))
		_, _ = d.Write(buf[:4])
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		_, _ = d.Write(buf[:])
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		_, _ = d.Write(buf[:])
	default:
		_, _ = d.WriteString(canonical.Sdump(v))
	}

	return d.Sum64()
}

// writeType prefixes the digest with the length-delimited type identity,
// the package path tells apart equally named types of different packages.
func writeType(d *xxhash.Digest, t reflect.Type) {
	var id string
	if t != nil {
		id = t.PkgPath() + " " + t.String()
	}

	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(id)))
	_, _ = d.Write(size[:])
	_, _ = d.WriteString(id)
}
