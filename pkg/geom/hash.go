package geom

// Hash returns a stable 64-bit hash of o, suitable as a map key derivation
// for code that cannot use Offset directly as a map key (Offset is already
// comparable and hashable by Go's built-in map implementation; this exists
// for callers building their own open-addressed tables, e.g. a custom
// sparse set over positions).
func (o Offset) Hash() uint64 {
	// Pack X into the high and Y into the low 32 bits and run the word
	// through the MurmurHash3 fmix64 finalizer; collisions are only a performance concern here, never a
	// correctness one, since every sparse structure also stores the key.
	x := uint64(uint32(o.X))<<32 | uint64(uint32(o.Y))
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
