package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStride_PackUnpackRoundTrip(t *testing.T) {
	s := Stride{Position: 3, UV: 2, Normal: 3, Color: 4 & 0x7}
	got := Unpack(s.Pack())
	assert.Equal(t, s, got)
}

func TestBuffer_EmitValidatesArity(t *testing.T) {
	b := NewBuffer(Stride{Position: 3, UV: 2})
	require.NoError(t, b.Emit([]float32{1, 2, 3, 0, 0}))
	assert.Equal(t, 1, b.VertexCount())

	err := b.Emit([]float32{1, 2, 3})
	require.Error(t, err)
}

func TestBuffer_VertexCount(t *testing.T) {
	b := NewBuffer(Stride{Position: 3})
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Emit([]float32{1, 2, 3}))
	}
	assert.Equal(t, 4, b.VertexCount())
	assert.Len(t, b.Vertices(), 12)
}
