// Package spirv checks compiled shader binaries before they are handed to the
// driver.
package spirv

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Magic is the first word of every SPIR-V module.
const Magic uint32 = 0x07230203

// headerWords is the number of words in the module header.
const headerWords = 5

var (
	ErrEmpty     = errors.New("spirv: empty module")
	ErrAlignment = errors.New("spirv: size is not a multiple of 4")
	ErrMagic     = errors.New("spirv: bad magic number")
	ErrShort     = errors.New("spirv: module shorter than its header")
)

// Decode converts the raw bytes of a module into words. Modules written in
// either byte order are accepted; the result is always in host order, which
// is what vkCreateShaderModule expects.
func Decode(code []byte) ([]uint32, error) {
	if len(code) == 0 {
		return nil, ErrEmpty
	}
	if len(code)%4 != 0 {
		return nil, errors.Wrapf(ErrAlignment, "%d bytes", len(code))
	}

	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(code) == Magic:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(code) == Magic:
		order = binary.BigEndian
	default:
		return nil, errors.Wrapf(ErrMagic, "got %#08x", binary.LittleEndian.Uint32(code))
	}

	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = order.Uint32(code[i*4:])
	}
	return words, nil
}

// Version is the SPIR-V version a module was generated for.
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Header is the fixed prefix of a module.
type Header struct {
	Version Version

	// Generator identifies the tool which produced the module.
	Generator uint32

	// Bound is one more than the largest id used in the module.
	Bound uint32
}

// ParseHeader reads the header of an already decoded module.
func ParseHeader(words []uint32) (Header, error) {
	if len(words) < headerWords {
		return Header{}, errors.Wrapf(ErrShort, "%d words", len(words))
	}
	if words[0] != Magic {
		return Header{}, ErrMagic
	}

	return Header{
		Version: Version{
			Major: uint8(words[1] >> 16),
			Minor: uint8(words[1] >> 8),
		},
		Generator: words[2],
		Bound:     words[3],
	}, nil
}
