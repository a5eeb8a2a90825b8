package gate

import (
	"strings"

	"github.com/aignet/aignet/pkg/signal"
)

// Key returns a value suitable as a map key for deduplicating gates.
// Gate itself cannot be a map key (its Nary variant holds a slice), so
// dedup (pkg/network) hashes on this string encoding instead — mirroring
// the teacher's use of a canonical string key for its clause/literal
// dictionaries in place of deriving Hash on a type holding a Vec.
func (g Gate) Key() string {
	var b strings.Builder
	b.WriteByte(byte(g.kind))
	switch g.kind {
	case KindNary:
		b.WriteByte(byte(g.nty))
		for _, s := range g.nary {
			writeRaw(&b, s)
		}
	default:
		for _, s := range g.Dependencies() {
			writeRaw(&b, s)
		}
	}
	return b.String()
}

func writeRaw(b *strings.Builder, s signal.Signal) {
	raw := s.Raw()
	b.WriteByte(byte(raw))
	b.WriteByte(byte(raw >> 8))
	b.WriteByte(byte(raw >> 16))
	b.WriteByte(byte(raw >> 24))
}
