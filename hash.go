package variant

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// combine folds hash b into hash a.
func combine(a, b uint64) uint64 {
	return a ^ (b + 0x9e3779b9 + (a << 6) + (a >> 2))
}

// Hash returns a content hash of the tree: the hash of the variant tag
// combined with a hash of the payload. Arrays accumulate element
// hashes in order; objects accumulate entry hashes over sorted keys so
// the result is deterministic. Int and Real hash their own bit
// patterns, so hash equality does not follow the Int/Real equality
// rule.
func (v *Value) Hash() uint64 {
	if v == nil {
		v = &Value{}
	}
	var data uint64
	switch v.typ {
	case Bool:
		if v.b {
			data = xxhash.Sum64([]byte{1})
		} else {
			data = xxhash.Sum64([]byte{0})
		}
	case Int:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v.i))
		data = xxhash.Sum64(buf[:])
	case Real:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.r))
		data = xxhash.Sum64(buf[:])
	case String:
		data = xxhash.Sum64String(v.s)
	case Array:
		for _, item := range v.a {
			data = combine(data, item.Hash())
		}
	case Object:
		keys := make([]string, 0, len(v.o))
		for k := range v.o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			data = combine(data, combine(xxhash.Sum64String(k), v.o[k].Hash()))
		}
	}
	return combine(xxhash.Sum64([]byte{byte(v.typ)}), data)
}
