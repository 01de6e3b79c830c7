// Package structhash builds a canonical byte encoding of tree-shaped values and
// hashes it with wyhash.
//
// Values are written as a stream of tags, length-prefixed strings, integers
// and node boundaries. Two values produce the same encoding (and therefore the
// same [Hasher.Sum64]) only when they write the same stream, so the encoding
// can double as a map key.
package structhash
