// Package lvtopo reduces finite simplicial complexes to their spines.
//
// A spine is what remains after repeatedly removing a principal simplex
// (one with no coface) together with a free face of it (a face with no
// other coface). Every such elementary collapse preserves the homotopy
// type, so the spine is a smaller complex with the same Betti numbers and
// Euler characteristic.
//
// Packages:
//
//	simplex/     immutable vertex sets with a fixed boundary order and total order
//	simplicial/  arena-backed complexes with stable IDs and non-validating removal
//	spine/       coface maps, admissibility, the incremental engine and the reference oracle
//	homology/    f-vector, Euler characteristic, components, Z/2 Betti numbers
//	builder/     deterministic fixtures: simplices, spheres, grids, tori, random flag complexes
//	complexio/   text and YAML simplex lists, gzip/zstd compressed files
//	cmd/spine/   command-line front end (reduce, stats, generate)
//
// Quick example:
//
//	k := simplicial.Closure(simplex.MustNew(0, 1, 2)) // filled triangle, 7 simplices
//	out, err := spine.Spine(k)                        // a single vertex
//
// Both reducers implement spine.Reducer and can be swapped in tests:
//
//	for _, r := range []spine.Reducer{spine.NewIncremental(), spine.NewReference()} {
//		out, _ := r.Reduce(k)
//		...
//	}
package lvtopo
