package zip_test

import (
	"container/list"
	"iter"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/errors"
	"github.com/brynbellomy/go-ranges/tuple"
	"github.com/brynbellomy/go-ranges/zip"
)

func collect2[A, B any](seq iter.Seq2[A, B]) []tuple.T2[A, B] {
	var out []tuple.T2[A, B]
	for a, b := range seq {
		out = append(out, tuple.New2(a, b))
	}
	return out
}

func TestEmpty(t *testing.T) {
	z := zip.Empty()
	require.True(t, z.Begin().Equal(z.End()))

	for range z.All() {
		require.Fail(t, "iterated over an empty zip")
	}

	c := z.Begin()
	require.Equal(t, tuple.T0{}, c.Get())
	require.Equal(t, tuple.T0{}, c.At(3))
	c.Next()
	c.Prev()
	require.True(t, c.PostNext().Equal(z.End()))
	require.True(t, c.PostPrev().Equal(z.Begin()))
}

func TestArrayAndVector(t *testing.T) {
	intArray := [3]int{1, 2, 3}
	floatVector := []float32{-1.0, -2.0, -3.0}

	expected := 1
	for a, v := range zip.Input2(ranges.Borrow(intArray[:]), ranges.Borrow(floatVector)).All() {
		require.Equal(t, expected, a, "unexpected array element value")
		require.Equal(t, float32(-expected), v, "unexpected vector element value")
		expected++
	}
	require.Equal(t, 4, expected)
}

func TestOrderPreservation(t *testing.T) {
	z := zip.RandomAccess2(ranges.Of(1, 2, 3), ranges.Of(-1.0, -2.0, -3.0))
	require.Equal(t, []tuple.T2[int, float64]{
		{A: 1, B: -1.0},
		{A: 2, B: -2.0},
		{A: 3, B: -3.0},
	}, collect2(z.All()))
}

func TestMismatchedSizes(t *testing.T) {
	t.Run("shorter first", func(t *testing.T) {
		intArray := []int{1, 2}
		intVector := []int{1, 2, 3, 4}

		index := 0
		for a, v := range zip.Input2(ranges.Borrow(intArray), ranges.Borrow(intVector)).All() {
			require.Equal(t, a, v, "unexpected mismatched values")
			index++
		}
		require.Equal(t, min(len(intArray), len(intVector)), index, "iteration past bounds")
	})

	t.Run("shorter second", func(t *testing.T) {
		z := zip.Forward2(ranges.NewIota(0, 100), ranges.Of("a", "b", "c"))
		require.Equal(t, []tuple.T2[int, string]{{A: 0, B: "a"}, {A: 1, B: "b"}, {A: 2, B: "c"}}, collect2(z.All()))
	})

	t.Run("one empty input", func(t *testing.T) {
		z := zip.Input2(ranges.Of(1, 2, 3), ranges.Borrow[string](nil))
		require.True(t, z.Begin().Equal(z.End()))
		require.Empty(t, collect2(z.All()))
	})

	t.Run("min length over every pair of lengths", func(t *testing.T) {
		for m := range 5 {
			for n := range 5 {
				z := zip.RandomAccess2(ranges.NewIota(0, m), ranges.NewIota(0, n))
				count := 0
				for a, b := range z.All() {
					require.Equal(t, count, a)
					require.Equal(t, count, b)
					count++
				}
				require.Equal(t, min(m, n), count, "m=%d n=%d", m, n)
			}
		}
	})
}

func TestAnyEqual(t *testing.T) {
	z := zip.RandomAccess2(ranges.NewIota(1, 7), ranges.NewIota(1, 6))

	c := z.Begin()
	other := z.Begin()
	require.True(t, c.Equal(other))

	// positions differ in both lanes
	other.Next()
	require.False(t, c.Equal(other))

	// the second lane reaches its end one step before the first
	for range 5 {
		require.False(t, c.Equal(z.End()))
		c.Next()
	}
	require.True(t, c.Equal(z.End()))
}

func TestIncrementDecrement(t *testing.T) {
	one := []int{1, 2, 3, 4, 5, 6}
	two := []int{1, 2, 3, 4, 5}

	t.Run("round trip", func(t *testing.T) {
		z := zip.Bidirectional2(ranges.Borrow(one), ranges.Borrow(two))
		c := z.Begin()
		c.Next()
		c.Prev()
		require.Equal(t, tuple.New2(1, 1), c.Get())
		require.True(t, c.Equal(z.Begin()))
	})

	t.Run("post increment returns the prior position", func(t *testing.T) {
		z := zip.Forward2(ranges.Borrow(one), ranges.Borrow(two))
		c := z.Begin()
		c.Next()
		require.Equal(t, tuple.New2(2, 2), c.Get())

		require.Equal(t, tuple.New2(2, 2), c.PostNext().Get())
		require.Equal(t, tuple.New2(3, 3), c.Get())
	})

	t.Run("post decrement returns the prior position", func(t *testing.T) {
		z := zip.Bidirectional2(ranges.Borrow(one), ranges.Borrow(two))
		c := z.Begin()
		c.Next()
		c.Next()

		prior := c.PostPrev()
		require.Equal(t, tuple.New2(3, 3), prior.Get())
		require.Equal(t, tuple.New2(2, 2), c.Get())

		// the snapshot moves independently of c
		prior.Next()
		require.Equal(t, tuple.New2(4, 4), prior.Get())
		require.Equal(t, tuple.New2(2, 2), c.Get())
	})

	t.Run("retreat from end in lockstep", func(t *testing.T) {
		z := zip.Bidirectional2(ranges.Borrow(two), ranges.Borrow(two))
		c := z.End()
		c.Prev()
		require.Equal(t, tuple.New2(5, 5), c.Get())
	})
}

func TestRandomAccess(t *testing.T) {
	z := zip.RandomAccess2(ranges.Of(1, 2, 3, 4, 5, 6), ranges.Of(1, 2, 3, 4, 5))

	c := z.Begin()
	require.Equal(t, tuple.New2(4, 4), c.At(3))
	require.Equal(t, tuple.New2(1, 1), c.Get(), "At must not move the cursor")

	c.Next()
	c.Next()
	require.Equal(t, tuple.New2(2, 2), c.At(-1))
	require.Equal(t, tuple.New2(3, 3), c.PostPrev().Get())
	require.Equal(t, tuple.New2(2, 2), c.PostNext().Get())
	require.Equal(t, tuple.New2(3, 3), c.Get())
}

func TestMixedOwnership(t *testing.T) {
	borrowed := []string{"a", "b", "c"}
	z := zip.RandomAccess2(ranges.Borrow(borrowed), ranges.Of(1, 2, 3))

	borrowed[0] = "z"
	first := z.Begin().Get()
	require.Equal(t, tuple.New2("z", 1), first)
}

func TestReferences(t *testing.T) {
	names := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	scores := []int{0, 0}

	for name, score := range zip.RandomAccess2(ranges.Own(names), ranges.BorrowRefs(scores)).All() {
		*score = len(name)
	}
	require.Equal(t, []int{36, 36}, scores)
}

func TestMixedTiers(t *testing.T) {
	l := list.New()
	for _, s := range []string{"x", "y", "z"} {
		l.PushBack(s)
	}

	t.Run("list and runes are bidirectional", func(t *testing.T) {
		z := zip.Bidirectional2(ranges.FromList[string](l), ranges.NewRunes("αβγδ"))
		c := z.Begin()
		c.Next()
		c.Next()
		require.Equal(t, tuple.New2("z", 'γ'), c.Get())
		c.Prev()
		require.Equal(t, tuple.New2("y", 'β'), c.Get())
	})

	t.Run("single pass input", func(t *testing.T) {
		pull := ranges.FromSeq(slices.Values([]int{10, 20, 30, 40}))
		defer pull.Stop()

		z := zip.Input2(pull, ranges.FromList[string](l))
		require.Equal(t, []tuple.T2[int, string]{{A: 10, B: "x"}, {A: 20, B: "y"}, {A: 30, B: "z"}}, collect2(z.All()))
	})
}

func TestZip3(t *testing.T) {
	t.Run("shortest of three", func(t *testing.T) {
		z := zip.Input3(ranges.Of(1, 2, 3), ranges.Of("a", "b"), ranges.NewRunes("xyz"))

		var got []tuple.T3[int, string, rune]
		for tup := range z.All() {
			got = append(got, tup)
		}
		require.Equal(t, []tuple.T3[int, string, rune]{{A: 1, B: "a", C: 'x'}, {A: 2, B: "b", C: 'y'}}, got)
	})

	t.Run("random access", func(t *testing.T) {
		z := zip.RandomAccess3(ranges.NewIota(1, 7), ranges.NewIota(1, 6), ranges.Of("a", "b", "c", "d", "e", "f"))
		c := z.Begin()
		require.Equal(t, tuple.New3(4, 4, "d"), c.At(3))

		require.Equal(t, tuple.New3(1, 1, "a"), c.PostNext().Get())
		require.Equal(t, tuple.New3(2, 2, "b"), c.PostPrev().Get())
		require.True(t, c.Equal(z.Begin()))
	})

	t.Run("forward and bidirectional", func(t *testing.T) {
		f := zip.Forward3(ranges.Of(1, 2), ranges.Of(3, 4), ranges.Of(5, 6))
		fc := f.Begin()
		require.Equal(t, tuple.New3(1, 3, 5), fc.PostNext().Get())
		require.Equal(t, tuple.New3(2, 4, 6), fc.Get())

		b := zip.Bidirectional3(ranges.Of(1, 2), ranges.Of(3, 4), ranges.NewRunes("ab"))
		bc := b.End()
		bc.Prev()
		require.Equal(t, tuple.New3(2, 4, 'b'), bc.Get())
		require.Equal(t, tuple.New3(2, 4, 'b'), bc.PostPrev().Get())
		require.True(t, bc.Equal(b.Begin()))
	})
}

func TestN(t *testing.T) {
	t.Run("zero ranges", func(t *testing.T) {
		z := zip.N[int]()
		require.Equal(t, 0, z.Arity())
		require.True(t, z.Begin().Equal(z.End()))
		for range z.All() {
			require.Fail(t, "iterated over an empty zip")
		}
	})

	t.Run("shortest wins", func(t *testing.T) {
		z := zip.N(
			ranges.Erase[int, int](ranges.Of(1, 2, 3)),
			ranges.Erase[int, int](ranges.NewIota(10, 12)),
			ranges.Erase[int, int](ranges.Of(100, 200, 300, 400)),
		)
		require.Equal(t, ranges.TierRandomAccess, z.Tier())
		require.Equal(t, 3, z.Arity())

		var got [][]int
		for row := range z.All() {
			got = append(got, row)
		}
		require.Equal(t, [][]int{{1, 10, 100}, {2, 11, 200}}, got)
	})

	t.Run("random access operations", func(t *testing.T) {
		z := zip.N(ranges.Erase[int, int](ranges.NewIota(1, 7)), ranges.Erase[int, int](ranges.NewIota(1, 6)))
		c := z.Begin()

		row, err := c.At(3)
		require.NoError(t, err)
		require.Equal(t, []int{4, 4}, row)

		prior, err := c.PostNext()
		require.NoError(t, err)
		require.Equal(t, []int{1, 1}, prior.Get())
		require.Equal(t, []int{2, 2}, c.Get())

		prior, err = c.PostPrev()
		require.NoError(t, err)
		require.Equal(t, []int{2, 2}, prior.Get())
		require.Equal(t, []int{1, 1}, c.Get())
	})

	t.Run("tier is the weakest input", func(t *testing.T) {
		l := list.New()
		l.PushBack(1)
		l.PushBack(2)

		z := zip.N(ranges.Erase[int, int](ranges.Of(5, 6)), ranges.Erase[int, *list.Element](ranges.FromList[int](l)))
		require.Equal(t, ranges.TierBidirectional, z.Tier())

		c := z.End()
		require.NoError(t, c.Prev())
		require.Equal(t, []int{6, 2}, c.Get())

		_, err := c.At(1)
		require.ErrorIs(t, err, errors.ErrUnsupported)
		required, _ := errors.GetField(err, "required")
		require.Equal(t, "random-access", required)
	})

	t.Run("input tier rejects revisiting", func(t *testing.T) {
		pull := ranges.FromSeq(slices.Values([]int{1, 2, 3}))
		defer pull.Stop()

		z := zip.N(ranges.Erase[int, int](pull), ranges.Erase[int, int](ranges.Of(4, 5, 6)))
		require.Equal(t, ranges.TierInput, z.Tier())

		c := z.Begin()
		_, err := c.PostNext()
		require.ErrorIs(t, err, errors.ErrUnsupported)
		require.ErrorIs(t, c.Prev(), errors.ErrUnsupported)
		_, err = c.PostPrev()
		require.ErrorIs(t, err, errors.ErrUnsupported)

		// failed operations leave the cursor where it was
		require.Equal(t, []int{1, 4}, c.Get())
		c.Next()
		require.Equal(t, []int{2, 5}, c.Get())
	})

	t.Run("mixed element types", func(t *testing.T) {
		z := zip.N(
			ranges.EraseAny[int, int](ranges.Of(1, 2, 3, 4)),
			ranges.EraseAny[string, int](ranges.Of("a", "b", "c")),
			ranges.EraseAny[float64, int](ranges.Of(1.5, 2.5, 3.5, 4.5, 5.5)),
			ranges.EraseAny[uint8, uint8](ranges.NewIota[uint8](10, 20)),
		)
		require.Equal(t, 4, z.Arity())
		require.Equal(t, ranges.TierRandomAccess, z.Tier())

		var got [][]any
		for row := range z.All() {
			got = append(got, row)
		}
		require.Equal(t, [][]any{
			{1, "a", 1.5, uint8(10)},
			{2, "b", 2.5, uint8(11)},
			{3, "c", 3.5, uint8(12)},
		}, got)

		row, err := z.Begin().At(2)
		require.NoError(t, err)
		require.Equal(t, []any{3, "c", 3.5, uint8(12)}, row)
	})

	t.Run("mixed element types take the weakest tier", func(t *testing.T) {
		z := zip.N(
			ranges.EraseAny[int, int](ranges.Of(1, 2, 3, 4)),
			ranges.EraseAny[rune, int](ranges.NewRunes("wxyz")),
			ranges.EraseAny[string, int](ranges.Of("a", "b", "c", "d", "e")),
			ranges.EraseAny[bool, int](ranges.Of(true, false, true, false)),
		)
		require.Equal(t, ranges.TierBidirectional, z.Tier())

		c := z.End()
		require.NoError(t, c.Prev())
		require.Equal(t, []any{4, 'z', "e", false}, c.Get())

		_, err := c.At(0)
		require.ErrorIs(t, err, errors.ErrUnsupported)
	})

	t.Run("copies are independent", func(t *testing.T) {
		z := zip.N(ranges.Erase[int, int](ranges.Of(1, 2, 3)))
		c := z.Begin()
		snapshot := c
		c.Next()
		require.Equal(t, []int{1}, snapshot.Get())
		require.Equal(t, []int{2}, c.Get())
	})
}

func BenchmarkZip2All(b *testing.B) {
	xs := make([]int, 1000)
	ys := make([]float64, 1000)
	for i := range xs {
		xs[i] = i
		ys[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0.0
		for x, y := range zip.RandomAccess2(ranges.Borrow(xs), ranges.Borrow(ys)).All() {
			sum += float64(x) + y
		}
	}
}

func BenchmarkManualLoop(b *testing.B) {
	xs := make([]int, 1000)
	ys := make([]float64, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0.0
		for j := range min(len(xs), len(ys)) {
			sum += float64(xs[j]) + ys[j]
		}
	}
}
