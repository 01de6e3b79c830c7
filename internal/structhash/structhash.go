package structhash

import (
	"encoding/binary"
	"math/bits"
)

// wyhash secrets from the reference implementation.
// These are fixed so the outputs are deterministic.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

// Markers framing nested nodes. Tags written by callers must stay below
// them.
const (
	nodeOpen  = 0xfe
	nodeClose = 0xff
)

// Hasher accumulates a structural encoding.
type Hasher struct {
	seed uint64
	buf  []byte
}

// New returns a Hasher with seed 0.
func New() *Hasher { return &Hasher{} }

// NewWithSeed returns a Hasher seeded with seed.
func NewWithSeed(seed uint64) *Hasher { return &Hasher{seed: seed} }

// WriteTag appends a one-byte discriminant. It panics for the values reserved
// for node boundaries.
func (h *Hasher) WriteTag(tag byte) {
	if tag >= nodeOpen {
		panic("structhash: reserved tag")
	}
	h.buf = append(h.buf, tag)
}

// WriteString appends s prefixed by its length so that adjacent strings
// cannot run together.
func (h *Hasher) WriteString(s string) {
	h.buf = binary.AppendUvarint(h.buf, uint64(len(s)))
	h.buf = append(h.buf, s...)
}

// WriteInt appends a zig-zag encoded integer.
func (h *Hasher) WriteInt(v int) {
	h.buf = binary.AppendVarint(h.buf, int64(v))
}

// Open starts a nested node holding n children.
func (h *Hasher) Open(n int) {
	h.buf = append(h.buf, nodeOpen)
	h.buf = binary.AppendUvarint(h.buf, uint64(n))
}

// Close ends the innermost nested node.
func (h *Hasher) Close() {
	h.buf = append(h.buf, nodeClose)
}

// Bytes returns the encoding written so far. The slice aliases the Hasher's
// buffer until the next write or Reset.
func (h *Hasher) Bytes() []byte { return h.buf }

// Sum64 returns the wyhash-64 of the encoding.
func (h *Hasher) Sum64() uint64 { return Sum64WithSeed(h.buf, h.seed) }

// Reset clears the accumulated encoding.
func (h *Hasher) Reset() { h.buf = h.buf[:0] }

// Sum64 returns the wyhash-64 of data with seed 0.
func Sum64(data []byte) uint64 { return Sum64WithSeed(data, 0) }

// Sum64WithSeed is the 64-bit wyhash mixing routine derived from the Go
// runtime fallback implementation.
func Sum64WithSeed(b []byte, seed uint64) uint64 {
	var a, c uint64
	s := len(b)
	seed ^= k0

	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(b[0])
		a |= uint64(b[s>>1]) << 8
		a |= uint64(b[s-1]) << 16
	case s == 4:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = a
	case s < 8:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = uint64(binary.LittleEndian.Uint32(b[s-4:]))
	case s == 8:
		a = binary.LittleEndian.Uint64(b)
		c = a
	case s <= 16:
		a = binary.LittleEndian.Uint64(b)
		c = binary.LittleEndian.Uint64(b[s-8:])
	default:
		l := s
		i := 0
		if l > 48 {
			seed1 := seed
			seed2 := seed
			for ; l > 48; l -= 48 {
				seed = mix(binary.LittleEndian.Uint64(b[i:])^k1, binary.LittleEndian.Uint64(b[i+8:])^seed)
				seed1 = mix(binary.LittleEndian.Uint64(b[i+16:])^k2, binary.LittleEndian.Uint64(b[i+24:])^seed1)
				seed2 = mix(binary.LittleEndian.Uint64(b[i+32:])^k3, binary.LittleEndian.Uint64(b[i+40:])^seed2)
				i += 48
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix(binary.LittleEndian.Uint64(b[i:])^k1, binary.LittleEndian.Uint64(b[i+8:])^seed)
			i += 16
		}
		a = binary.LittleEndian.Uint64(b[i+l-16:])
		c = binary.LittleEndian.Uint64(b[i+l-8:])
	}

	return mix(k4^uint64(s), mix(a^k1, c^seed))
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
