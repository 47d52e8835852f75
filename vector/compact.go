package vector

import (
	"encoding/binary"
	"math"

	"github.com/nishiharu/cicada-go/symbol"
)

// Compact encoding tag layout, following spec.md §6 and grounded on
// feature_vector_compact.hpp's __feature_vector_data_codec: one byte of
// (kind, size), kind in the top nibble, size (in bytes) in the bottom
// nibble.
const (
	tagFloat    = 1 << 4
	tagUnsigned = 1 << 5
	tagSigned   = 1 << 6
	tagSizeMask = 0x0f
)

// byteSize returns the minimal number of bytes (1..8) needed to hold the
// unsigned magnitude x, mirroring __feature_vector_data_codec::byte_size.
func byteSize(x uint64) int {
	n := 1
	for _, mask := range []uint64{
		0xffffffffffffff00, 0xffffffffffff0000, 0xffffffffff000000,
		0xffffffff00000000, 0xffffff0000000000, 0xffff000000000000,
		0xff00000000000000,
	} {
		if x&mask != 0 {
			n++
		}
	}

	return n
}

// encodeValue appends the tag byte and little-endian value bytes for val.
func encodeValue(buf []byte, val float64) []byte {
	if asInt := int64(val); float64(asInt) == val {
		magnitude := uint64(asInt)
		tag := byte(tagUnsigned)
		if asInt < 0 {
			magnitude = uint64(-asInt)
			tag = tagSigned
		}
		size := byteSize(magnitude)
		buf = append(buf, tag|byte(size&tagSizeMask))
		for i := 0; i < size; i++ {
			buf = append(buf, byte(magnitude>>(8*i)))
		}

		return buf
	}
	if asFloat32 := float32(val); float64(asFloat32) == val {
		buf = append(buf, tagFloat|4)
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(asFloat32))

		return append(buf, tmp[:]...)
	}
	buf = append(buf, tagFloat|8)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(val))

	return append(buf, tmp[:]...)
}

// decodeValue reads one tagged value starting at data[0], returning the
// value and the number of bytes consumed.
func decodeValue(data []byte) (float64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrTruncated
	}
	tag := data[0]
	size := int(tag & tagSizeMask)
	if len(data) < 1+size {
		return 0, 0, ErrTruncated
	}
	payload := data[1 : 1+size]

	switch {
	case tag&tagFloat != 0:
		switch size {
		case 4:
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(payload))), 1 + size, nil
		case 8:
			return math.Float64frombits(binary.LittleEndian.Uint64(payload)), 1 + size, nil
		default:
			return 0, 0, ErrBadTag
		}
	case tag&tagUnsigned != 0, tag&tagSigned != 0:
		var magnitude uint64
		for i := 0; i < size; i++ {
			magnitude |= uint64(payload[i]) << (8 * i)
		}
		if tag&tagSigned != 0 {
			return -float64(int64(magnitude)), 1 + size, nil
		}

		return float64(magnitude), 1 + size, nil
	default:
		return 0, 0, ErrBadTag
	}
}

// Encode serializes fv into the compact byte format: a sequence of entries,
// each a delta-varint-coded key ID (relative to the previous entry's key,
// 0 for the first) followed by a tagged value.
//
// Complexity: O(n log n) to sort keys, O(n) to encode.
func Encode(fv *FeatureVector) []byte {
	keys := fv.Keys()
	buf := make([]byte, 0, fv.Len()*4)
	var prev uint64
	var varintBuf [binary.MaxVarintLen64]byte
	for _, k := range keys {
		delta := k.ID() - prev
		prev = k.ID()
		n := binary.PutUvarint(varintBuf[:], delta)
		buf = append(buf, varintBuf[:n]...)
		buf = encodeValue(buf, fv.Get(k))
	}

	return buf
}

// Decode parses bytes produced by Encode back into a FeatureVector holding
// the same (key, value) multiset.
func Decode(data []byte) (*FeatureVector, error) {
	fv := New()
	var prev uint64
	for len(data) > 0 {
		delta, n := binary.Uvarint(data)
		if n <= 0 {
			return nil, ErrTruncated
		}
		data = data[n:]
		prev += delta

		val, consumed, err := decodeValue(data)
		if err != nil {
			return nil, err
		}
		data = data[consumed:]

		fv.Set(symbol.FromID(prev), val)
	}

	return fv, nil
}
