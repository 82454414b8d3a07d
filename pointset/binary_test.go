package pointset

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/hupe1980/closestpair/point"
	"github.com/hupe1980/closestpair/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	rng := testutil.NewRNG(7)

	sets := map[string][]point.Point{
		"Empty":   {},
		"Single":  {point.New(1, 2, 3)},
		"Uniform": rng.UniformPoints(500, -10, 10),
		// Integer lattices repeat byte patterns and compress well.
		"Lattice": testutil.Lattice(8, 1),
		"Special": {
			point.New(math.Inf(1), math.NaN(), -0.0),
			point.New(math.MaxFloat64, math.SmallestNonzeroFloat64, 0),
		},
	}

	for name, pts := range sets {
		for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
			t.Run(name+"/"+c.String(), func(t *testing.T) {
				data, err := Encode(pts, c)
				require.NoError(t, err)
				assert.Equal(t, "CP3D", string(data[:4]))

				got, err := Decode(data)
				require.NoError(t, err)
				require.Len(t, got, len(pts))
				for i := range pts {
					assert.Equal(t, math.Float64bits(pts[i].X), math.Float64bits(got[i].X))
					assert.Equal(t, math.Float64bits(pts[i].Y), math.Float64bits(got[i].Y))
					assert.Equal(t, math.Float64bits(pts[i].Z), math.Float64bits(got[i].Z))
				}
			})
		}
	}
}

func TestEncode_CompressionFallback(t *testing.T) {
	lattice := testutil.Lattice(10, 1)

	data, err := Encode(lattice, CompressionZSTD)
	require.NoError(t, err)
	assert.Equal(t, CompressionZSTD, Compression(data[5]))
	assert.Less(t, len(data), headerSize+len(lattice)*pointSize)

	// A single point is too small to compress.
	data, err = Encode([]point.Point{point.New(0.1, 0.2, 0.3)}, CompressionLZ4)
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, Compression(data[5]))
	assert.Len(t, data, headerSize+pointSize)
}

func TestDecode_Errors(t *testing.T) {
	pts := testutil.NewRNG(1).UniformPoints(10, 0, 1)
	valid, err := Encode(pts, CompressionNone)
	require.NoError(t, err)

	corrupt := func(fn func([]byte)) []byte {
		data := append([]byte(nil), valid...)
		fn(data)
		return data
	}

	t.Run("Short", func(t *testing.T) {
		_, err := Decode(valid[:10])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("Magic", func(t *testing.T) {
		_, err := Decode(corrupt(func(b []byte) { b[0] = 'X' }))
		assert.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("Version", func(t *testing.T) {
		_, err := Decode(corrupt(func(b []byte) { b[4] = 9 }))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("Count", func(t *testing.T) {
		_, err := Decode(corrupt(func(b []byte) { binary.LittleEndian.PutUint64(b[8:], 11) }))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("HugeCount", func(t *testing.T) {
		_, err := Decode(corrupt(func(b []byte) { binary.LittleEndian.PutUint64(b[8:], math.MaxUint64/2) }))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := Decode(valid[:len(valid)-1])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("Checksum", func(t *testing.T) {
		_, err := Decode(corrupt(func(b []byte) { b[headerSize+3] ^= 0xff }))
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		_, err := Decode(corrupt(func(b []byte) { b[5] = 7 }))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("ForgedRawSize", func(t *testing.T) {
		inputs := map[string][]point.Point{
			"Small":   testutil.NewRNG(2).UniformPoints(4, 0, 1),
			"Lattice": testutil.Lattice(10, 1),
		}
		for name, pts := range inputs {
			for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
				t.Run(name+"/"+c.String(), func(t *testing.T) {
					data, err := Encode(pts, c)
					require.NoError(t, err)

					const count = uint64(1) << 55
					binary.LittleEndian.PutUint64(data[8:], count)
					binary.LittleEndian.PutUint64(data[16:], count*pointSize)

					require.NotPanics(t, func() {
						_, err = Decode(data)
					})
					assert.ErrorIs(t, err, ErrCorrupt)
				})
			}
		}
	})

	t.Run("ForgedRawSizeWithinLZ4Bound", func(t *testing.T) {
		data, err := Encode(testutil.Lattice(10, 1), CompressionLZ4)
		require.NoError(t, err)
		require.Equal(t, CompressionLZ4, Compression(data[5]))

		// Twice the real size still passes the ratio bound, so the block
		// decoder itself has to reject the mismatch.
		count := uint64(2 * 1000)
		binary.LittleEndian.PutUint64(data[8:], count)
		binary.LittleEndian.PutUint64(data[16:], count*pointSize)

		_, err = Decode(data)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("BadLZ4Payload", func(t *testing.T) {
		data, err := Encode(testutil.Lattice(10, 1), CompressionLZ4)
		require.NoError(t, err)
		require.Equal(t, CompressionLZ4, Compression(data[5]))
		data[5] = uint8(CompressionZSTD)
		_, err = Decode(data)
		assert.ErrorIs(t, err, ErrCorrupt)
	})
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"LZ4":  CompressionLZ4,
		"zstd": CompressionZSTD,
	} {
		got, err := ParseCompression(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("gzip")
	assert.Error(t, err)
	assert.Equal(t, "compression(9)", Compression(9).String())
}
