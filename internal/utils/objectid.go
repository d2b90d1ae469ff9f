package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

const objectIDLength = 24

// NewObjectID returns a 24-character hex identifier: a 4-byte big-endian
// unix timestamp followed by 8 random bytes.
func NewObjectID() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(raw[:])
}

// IsValidObjectID reports whether id is a well-formed 24-character hex
// identifier. It does not check that the referent exists.
func IsValidObjectID(id string) bool {
	if len(id) != objectIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
