package ec

import (
	"encoding/hex"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type encodingVector struct {
	K            int64  `yaml:"k"`
	Compressed   string `yaml:"compressed"`
	Uncompressed string `yaml:"uncompressed"`
	Hybrid       string `yaml:"hybrid"`
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncodingVectors(t *testing.T) {
	data, err := os.ReadFile("testdata/encodings.yaml")
	require.NoError(t, err)
	var vectors struct {
		Curves map[string][]encodingVector `yaml:"curves"`
	}
	require.NoError(t, yaml.Unmarshal(data, &vectors))

	curves := map[string]testCurve{
		"fp29":      literatureCurve(t),
		"sect163r2": sect163r2Curve(t),
	}
	require.Len(t, vectors.Curves, len(curves))

	for name, vs := range vectors.Curves {
		base, ok := curves[name]
		require.True(t, ok, name)
		for _, cs := range base.curve.SupportedCoordinateSystems() {
			tc := base.withCoords(t, cs)
			t.Run(name+"/"+cs.String(), func(t *testing.T) {
				g := tc.generator(t)
				for _, v := range vs {
					p := g.Multiply(big.NewInt(v.K))
					assert.Equal(t, v.Compressed, hex.EncodeToString(p.Encoded(true)), "k=%d", v.K)
					assert.Equal(t, v.Uncompressed, hex.EncodeToString(p.Encoded(false)), "k=%d", v.K)

					for _, enc := range []string{v.Compressed, v.Uncompressed, v.Hybrid} {
						q, err := tc.curve.DecodePoint(mustHex(t, enc))
						require.NoError(t, err, enc)
						assert.True(t, p.Equal(q), enc)
					}
				}
			})
		}
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	for _, tc := range allTestCurves(t) {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.generator(t)
			for i := 0; i < 6; i++ {
				for _, compressed := range []bool{true, false} {
					q, err := tc.curve.DecodePoint(p.Encoded(compressed))
					require.NoError(t, err)
					assert.True(t, p.Equal(q), "doubling %d, compressed %v", i, compressed)
				}
				p = p.Twice()
			}

			inf := tc.curve.Infinity()
			assert.Equal(t, []byte{0}, inf.Encoded(true))
			q, err := tc.curve.DecodePoint(inf.Encoded(false))
			require.NoError(t, err)
			assert.True(t, q.IsInfinity())
		})
	}
}

func TestTinyBinaryCurveEncodesEveryPoint(t *testing.T) {
	base := tinyBinaryCurve(t)
	for _, cs := range base.curve.SupportedCoordinateSystems() {
		tc := base.withCoords(t, cs)
		g := tc.generator(t)
		p := g
		for i := 1; i < 11; i++ {
			for _, compressed := range []bool{true, false} {
				q, err := tc.curve.DecodePoint(p.Encoded(compressed))
				require.NoError(t, err, "%s: %d*G", cs, i)
				assert.True(t, p.Equal(q), "%s: %d*G", cs, i)
			}
			p = p.Add(g)
		}
	}
}

func TestDecodePointErrors(t *testing.T) {
	fp := literatureCurve(t)
	g := fp.generator(t)
	valid := g.Encoded(false)

	for _, tc := range []struct {
		name string
		enc  []byte
		kind ErrorKind
	}{
		{"empty", nil, ErrInvalidEncodingLen},
		{"bad prefix", []byte{0x05, 0x05, 0x16}, ErrInvalidEncoding},
		{"long infinity", []byte{0x00, 0x00}, ErrInvalidInfinityEncoding},
		{"short compressed", []byte{0x02}, ErrInvalidEncodingLen},
		{"short uncompressed", valid[:2], ErrInvalidEncodingLen},
		{"long uncompressed", append(append([]byte(nil), valid...), 0), ErrInvalidEncodingLen},
		{"x out of range", []byte{0x02, 0x1d}, ErrFieldValueOutOfRange},
		{"off curve", []byte{0x04, 0x05, 0x05}, ErrPointNotOnCurve},
		{"hybrid parity", []byte{0x07, 0x05, 0x16}, ErrInconsistentHybrid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := fp.curve.DecodePoint(tc.enc)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)
		})
	}

	// x = 7 gives y^2 = 14, a non-residue mod 29.
	_, err := fp.curve.DecodePoint([]byte{0x02, 0x07})
	assert.True(t, errors.Is(err, ErrInvalidCompression))

	bin := tinyBinaryCurve(t)
	_, err = bin.curve.DecodePoint([]byte{0x03, 0x00})
	assert.True(t, errors.Is(err, ErrInvalidCompression))
	// The order-two point decodes but lies outside the subgroup.
	_, err = bin.curve.DecodePoint([]byte{0x02, 0x00})
	assert.True(t, errors.Is(err, ErrPointNotInSubgroup))
	// x = 1 is on the curve but has cofactor component.
	_, err = bin.curve.DecodePoint([]byte{0x04, 0x01, 0x00})
	assert.True(t, errors.Is(err, ErrPointNotInSubgroup))
}
