package anyvalue

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

/*
NewSeed returns a seed read from crypto/rand.
*/
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

/*
NameSeed returns the seed NewFromName uses for name. It is the farm
fingerprint of name and does not change between releases.
*/
func NameSeed(name string) uint64 {
	return farm.Fingerprint64([]byte(name))
}
