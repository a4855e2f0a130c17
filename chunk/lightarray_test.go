package chunk_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/LavaPower/quarry/chunk"
	"github.com/calebcase/oops"
)

func TestLightArray(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		mark := oops.New("unexpected")

		a := chunk.NewLightArray()

		require.Equal(t, chunk.Length, a.Len(), mark)
		require.Len(t, a.Bytes(), chunk.LightBytes, mark)

		for _, i := range []int{0, 1, 4094, 4095} {
			got, err := a.Get(i)
			require.NoError(t, err, mark)
			require.Equal(t, uint8(0), got, mark)
		}
	})

	t.Run("nibbles", func(t *testing.T) {
		type TC struct {
			Index int
			Level uint8
			Byte  int
			Want  byte
			Mark  error
		}

		// Applied in order to one array: even cells land in the low
		// nibble, odd cells in the high one, and a write never touches
		// its neighbor.
		tcs := []TC{
			{Index: 0, Level: 9, Byte: 0, Want: 0b_0000_1001, Mark: oops.New("unexpected")},
			{Index: 1, Level: 3, Byte: 0, Want: 0b_0011_1001, Mark: oops.New("unexpected")},
			{Index: 0, Level: 15, Byte: 0, Want: 0b_0011_1111, Mark: oops.New("unexpected")},
			{Index: 1, Level: 0, Byte: 0, Want: 0b_0000_1111, Mark: oops.New("unexpected")},
			{Index: 4095, Level: 7, Byte: 2047, Want: 0b_0111_0000, Mark: oops.New("unexpected")},
			{Index: 4094, Level: 1, Byte: 2047, Want: 0b_0111_0001, Mark: oops.New("unexpected")},
		}

		a := chunk.NewLightArray()

		for _, tc := range tcs {
			t.Run(fmt.Sprintf("i%d_v%d", tc.Index, tc.Level), func(t *testing.T) {
				require.NoError(t, a.Set(tc.Index, tc.Level), tc.Mark)

				t.Logf("Byte %d: %08b\n", tc.Byte, a.Bytes()[tc.Byte])

				require.Equal(t, tc.Want, a.Bytes()[tc.Byte], tc.Mark)

				got, err := a.Get(tc.Index)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Level, got, tc.Mark)
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		mark := oops.New("unexpected")

		a := chunk.NewLightArray()

		require.NoError(t, a.Set(0, 9), mark)

		// Out of range levels are rejected outright, never masked into
		// the cell.
		err := a.Set(0, 16)
		require.True(t, chunk.ErrValueRange.Has(err), mark)

		got, err := a.Get(0)
		require.NoError(t, err, mark)
		require.Equal(t, uint8(9), got, mark)

		for _, i := range []int{-1, chunk.Length} {
			_, err := a.Get(i)
			require.True(t, chunk.ErrIndexRange.Has(err), mark)

			err = a.Set(i, 1)
			require.True(t, chunk.ErrIndexRange.Has(err), mark)
		}
	})

	t.Run("load", func(t *testing.T) {
		mark := oops.New("unexpected")

		data := make([]byte, chunk.LightBytes)
		for i := range data {
			data[i] = 0b_0011_1001
		}

		a, err := chunk.LoadLightArray(data)
		require.NoError(t, err, mark)

		got, err := a.Get(0)
		require.NoError(t, err, mark)
		require.Equal(t, uint8(9), got, mark)

		got, err = a.Get(1)
		require.NoError(t, err, mark)
		require.Equal(t, uint8(3), got, mark)

		// The bytes were copied in.
		data[0] = 0
		require.Equal(t, byte(0b_0011_1001), a.Bytes()[0], mark)

		for _, n := range []int{0, 2047, 2049, 4096} {
			t.Run(fmt.Sprintf("len_%d", n), func(t *testing.T) {
				_, err := chunk.LoadLightArray(make([]byte, n))
				require.True(t, chunk.ErrBadArray.Has(err), mark)
			})
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		mark := oops.New("unexpected")

		a := chunk.NewLightArray()

		for i := 0; i < chunk.Length; i++ {
			require.NoError(t, a.Set(i, uint8(i%16)), mark)
		}

		t.Logf("Bytes: %s\n", spew.Sdump(a.Bytes()[:8]))

		b, err := chunk.LoadLightArray(a.Bytes())
		require.NoError(t, err, mark)

		for i := 0; i < chunk.Length; i++ {
			got, err := b.Get(i)
			require.NoError(t, err, mark)
			require.Equal(t, uint8(i%16), got, mark)
		}
	})
}
