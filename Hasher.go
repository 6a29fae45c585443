package Go_Index

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher is a seed for xxhash. The zero value is a valid seed. Receivers are thread-safe.
type Hasher uint64

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	d := xxhash.NewWithSeed(uint64(u))
	_, _ = d.Write(b)
	return uint(d.Sum64())
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return u.HashBytes(b[:])
}

// HashString directly hashes a string without copying it.
func (u Hasher) HashString(v string) uint {
	d := xxhash.NewWithSeed(uint64(u))
	_, _ = d.WriteString(v)
	return uint(d.Sum64())
}
