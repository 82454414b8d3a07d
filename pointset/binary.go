package pointset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/hupe1980/closestpair/point"
)

const (
	// Version is the current binary format version.
	Version = 1

	headerSize = 36
	pointSize  = 24
)

var magic = [4]byte{'C', 'P', '3', 'D'}

var (
	// ErrBadMagic is returned when data does not start with the binary magic.
	ErrBadMagic = errors.New("pointset: bad magic")
	// ErrUnsupportedVersion is returned for unknown format versions.
	ErrUnsupportedVersion = errors.New("pointset: unsupported version")
	// ErrCorrupt is returned when header and payload disagree.
	ErrCorrupt = errors.New("pointset: corrupt data")
	// ErrChecksum is returned when the payload CRC does not match.
	ErrChecksum = errors.New("pointset: checksum mismatch")
)

type header struct {
	version     uint8
	compression Compression
	count       uint64
	rawSize     uint64
	payloadSize uint64
	crc         uint32
}

func (h header) marshal(dst []byte) {
	copy(dst[0:4], magic[:])
	dst[4] = h.version
	dst[5] = uint8(h.compression)
	binary.LittleEndian.PutUint16(dst[6:], 0)
	binary.LittleEndian.PutUint64(dst[8:], h.count)
	binary.LittleEndian.PutUint64(dst[16:], h.rawSize)
	binary.LittleEndian.PutUint64(dst[24:], h.payloadSize)
	binary.LittleEndian.PutUint32(dst[32:], h.crc)
}

func parseHeader(data []byte) (header, error) {
	if len(data) < headerSize {
		return header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if [4]byte(data[0:4]) != magic {
		return header{}, ErrBadMagic
	}
	h := header{
		version:     data[4],
		compression: Compression(data[5]),
		count:       binary.LittleEndian.Uint64(data[8:]),
		rawSize:     binary.LittleEndian.Uint64(data[16:]),
		payloadSize: binary.LittleEndian.Uint64(data[24:]),
		crc:         binary.LittleEndian.Uint32(data[32:]),
	}
	if h.version != Version {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}
	return h, nil
}

// Encode serializes pts in the binary format. When c does not shrink the
// payload, it is stored raw and the header records CompressionNone.
func Encode(pts []point.Point, c Compression) ([]byte, error) {
	raw := make([]byte, len(pts)*pointSize)
	for i, p := range pts {
		off := i * pointSize
		binary.LittleEndian.PutUint64(raw[off:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(raw[off+8:], math.Float64bits(p.Y))
		binary.LittleEndian.PutUint64(raw[off+16:], math.Float64bits(p.Z))
	}

	payload, err := compress(raw, c)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		payload, c = raw, CompressionNone
	}

	out := make([]byte, headerSize+len(payload))
	header{
		version:     Version,
		compression: c,
		count:       uint64(len(pts)),
		rawSize:     uint64(len(raw)),
		payloadSize: uint64(len(payload)),
		crc:         crc32.ChecksumIEEE(raw),
	}.marshal(out)
	copy(out[headerSize:], payload)
	return out, nil
}

// Decode parses data produced by Encode. The returned points never alias data.
func Decode(data []byte) ([]point.Point, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	if h.count > math.MaxInt/pointSize || h.rawSize != h.count*pointSize {
		return nil, fmt.Errorf("%w: raw size %d does not hold %d points", ErrCorrupt, h.rawSize, h.count)
	}
	if h.payloadSize != uint64(len(data)-headerSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorrupt, len(data)-headerSize, h.payloadSize)
	}

	if !plausibleRawSize(h.compression, h.payloadSize, h.rawSize) {
		return nil, fmt.Errorf("%w: %s payload of %d bytes cannot hold %d raw bytes", ErrCorrupt, h.compression, h.payloadSize, h.rawSize)
	}

	raw, err := decompress(data[headerSize:], h.compression, int(h.rawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %w", ErrCorrupt, h.compression, err)
	}
	if crc32.ChecksumIEEE(raw) != h.crc {
		return nil, ErrChecksum
	}

	pts := make([]point.Point, h.count)
	for i := range pts {
		off := i * pointSize
		pts[i] = point.Point{
			X: math.Float64frombits(binary.LittleEndian.Uint64(raw[off:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(raw[off+8:])),
			Z: math.Float64frombits(binary.LittleEndian.Uint64(raw[off+16:])),
		}
	}
	return pts, nil
}
