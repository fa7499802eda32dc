package magic

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReinterpretSlice(t *testing.T) {
	o := make([][16]byte, 4)
	for i := range o {
		rand.Read(o[i][:])
	}
	sl := ReinterpretSlice[byte](o)
	x := ReinterpretSlice[[16]byte](sl)
	require.Equal(t, o, x)
}

func TestStringViews(t *testing.T) {
	b := []byte("hello")
	require.Equal(t, "hello", String(b))
	require.Equal(t, b, Slice("hello"))
}
