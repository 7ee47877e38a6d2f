package tuple_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynbellomy/go-ranges/tuple"
)

func TestT2(t *testing.T) {
	pair := tuple.New2(1, "one")
	require.Equal(t, tuple.T2[int, string]{A: 1, B: "one"}, pair)

	a, b := pair.Unpack()
	require.Equal(t, 1, a)
	require.Equal(t, "one", b)

	require.Equal(t, "(1, one)", pair.String())
	require.Equal(t, "(1, one)", fmt.Sprint(pair))
}

func TestT3(t *testing.T) {
	triple := tuple.New3(1, -1.5, 'x')

	a, b, c := triple.Unpack()
	require.Equal(t, 1, a)
	require.Equal(t, -1.5, b)
	require.Equal(t, 'x', c)

	require.Equal(t, "(1, -1.5, 120)", triple.String())
}

func TestT0(t *testing.T) {
	require.Equal(t, "()", tuple.T0{}.String())
	require.Equal(t, tuple.T0{}, tuple.T0{})
}
