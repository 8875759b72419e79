// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// betti.go - Betti numbers over Z/2 from boundary-matrix ranks.
//
// β_d = f_d - rank ∂_d - rank ∂_{d+1}, with ∂_0 = 0. Each row of ∂_d is the
// boundary of one d-simplex as a bitset over the (d-1)-simplices; ranks are
// computed by elimination on the lowest set bit.

package homology

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// BettiNumbers returns β_0..β_D over Z/2 for a complex of dimension D.
// An empty complex yields an empty slice.
func BettiNumbers(k *simplicial.Complex) []int {
	f := FVector(k)
	dim := len(f) - 1
	if dim < 0 {
		return []int{}
	}

	// rank[d] = rank of ∂_d for d = 1..dim; rank[0] and rank[dim+1] stay 0.
	rank := make([]int, dim+2)
	for d := 1; d <= dim; d++ {
		rank[d] = boundaryRank(k, d)
	}

	betti := make([]int, dim+1)
	for d := 0; d <= dim; d++ {
		betti[d] = f[d] - rank[d] - rank[d+1]
	}

	return betti
}

// boundaryRank returns the Z/2 rank of ∂_d.
func boundaryRank(k *simplicial.Complex, d int) int {
	lower := k.RangeIDs(d - 1)
	column := make(map[simplicial.ID]uint, len(lower))
	for i, id := range lower {
		column[id] = uint(i)
	}

	upper := k.RangeIDs(d)
	rows := make([]*bitset.BitSet, 0, len(upper))
	for _, id := range upper {
		row := bitset.New(uint(len(lower)))
		for _, f := range k.FaceIDs(id) {
			if c, ok := column[f]; ok {
				row.Set(c)
			}
		}
		rows = append(rows, row)
	}

	return rankGF2(rows)
}

// rankGF2 eliminates rows in place and returns the rank of the matrix.
func rankGF2(rows []*bitset.BitSet) int {
	pivots := make(map[uint]*bitset.BitSet, len(rows))
	rank := 0
	for _, row := range rows {
		for {
			low, ok := row.NextSet(0)
			if !ok {
				break // reduced to zero: linearly dependent
			}
			pivot, taken := pivots[low]
			if !taken {
				pivots[low] = row
				rank++
				break
			}
			row.InPlaceSymmetricDifference(pivot)
		}
	}

	return rank
}
