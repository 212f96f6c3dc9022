package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainRemoveAtShiftsTail(t *testing.T) {
	d := newDomain(5)
	removed := d.RemoveAt(1) // remove value 1, which lives at position 1
	require.Equal(t, 1, removed)
	require.Equal(t, 4, d.Size())
	require.Equal(t, -1, d.IndexOf(1))
	for _, v := range []int{0, 2, 3, 4} {
		require.NotEqual(t, -1, d.IndexOf(v))
	}
}

func TestDomainRestoreReinsertsValue(t *testing.T) {
	d := newDomain(3)
	v := d.RemoveAt(0)
	require.Equal(t, 2, d.Size())
	d.Restore(v)
	require.Equal(t, 3, d.Size())
	require.NotEqual(t, -1, d.IndexOf(v))
}

// TestRoundTripDomainStack: any interleaving of (remove, push) followed
// by a restore-to-mark returns every domain to its state at the mark.
func TestRoundTripDomainStack(t *testing.T) {
	domains := []Domain{newDomain(4), newDomain(4)}
	stack := newDomainChangeStack(8)

	mark := stack.Mark()
	r1 := domains[0].RemoveAt(2)
	stack.Push(0, r1)
	r2 := domains[1].RemoveAt(0)
	stack.Push(1, r2)
	r3 := domains[0].RemoveAt(0)
	stack.Push(0, r3)

	require.Equal(t, 2, domains[0].Size())
	require.Equal(t, 3, domains[1].Size())

	stack.RestoreTo(mark, domains)

	require.Equal(t, 4, domains[0].Size())
	require.Equal(t, 4, domains[1].Size())
	for _, v := range []int{0, 1, 2, 3} {
		require.NotEqual(t, -1, domains[0].IndexOf(v))
		require.NotEqual(t, -1, domains[1].IndexOf(v))
	}
}

func TestDomainChangeStackPartialRewind(t *testing.T) {
	domains := []Domain{newDomain(3)}
	stack := newDomainChangeStack(3)

	outerMark := stack.Mark()
	v0 := domains[0].RemoveAt(0)
	stack.Push(0, v0)

	innerMark := stack.Mark()
	v1 := domains[0].RemoveAt(0)
	stack.Push(0, v1)
	require.Equal(t, 1, domains[0].Size())

	stack.RestoreTo(innerMark, domains)
	require.Equal(t, 2, domains[0].Size())

	stack.RestoreTo(outerMark, domains)
	require.Equal(t, 3, domains[0].Size())
}
