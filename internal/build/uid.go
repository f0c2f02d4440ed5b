package build

import (
	"math/big"
	"strings"
)

// uidBase is the fixed base identifier output UIDs are derived from; it far
// exceeds a machine word, hence big.Int. Adding a per-calendar counter keeps
// ids unique within a calendar while the whole run stays deterministic.
const uidBase = "040000008200E00074C5B7101A82E00800000000B018367A1691D3010000000000000000100000006AC9A0BE63E24944931F7635DF2D1C2E"

// uidSeq issues event identifiers for one output calendar. Each cohort's
// build owns its own sequence, starting from zero.
type uidSeq struct {
	base *big.Int
	n    int64
}

func newUIDSeq() *uidSeq {
	base, ok := new(big.Int).SetString(uidBase, 16)
	if !ok {
		panic("build: bad uid base literal")
	}
	return &uidSeq{base: base}
}

func (s *uidSeq) Next() string {
	v := new(big.Int).Add(s.base, big.NewInt(s.n))
	s.n++
	return strings.ToUpper(v.Text(16))
}
