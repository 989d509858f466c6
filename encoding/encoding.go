// Package encoding offers (de)serialization APIs for rootfind results
// and iteration traces. It uses CBOR, is schema-less, and prefixes
// every stream with a format version so readers can reject payloads
// written by an incompatible release.
package encoding

import (
	"errors"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// FormatVersion is encoded in the first bytes of every stream.
const FormatVersion = 1

var errInvalidFormat = errors.New("trying to deserialize an object serialized with another format version")

// Write serialize object into file
func Write(path string, from interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, from)
}

// Read read and deserialize input into object
// provided interface must be a pointer
func Read(path string, into interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Deserialize(f, into)
}

// Serialize object from into provided writer
// encodes the format version in the first bytes
func Serialize(writer io.Writer, from interface{}) error {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	encoder := em.NewEncoder(writer)

	if err := encoder.Encode(uint(FormatVersion)); err != nil {
		return err
	}

	return encoder.Encode(from)
}

// Deserialize reads bytes from reader and construct object into
func Deserialize(reader io.Reader, into interface{}) error {
	decoder := cbor.NewDecoder(reader)

	var version uint
	if err := decoder.Decode(&version); err != nil {
		return err
	}
	if version != FormatVersion {
		return errInvalidFormat
	}

	return decoder.Decode(into)
}
