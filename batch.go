package celltree

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for i in [0, n) across worker goroutines, blocking
// until all have completed. Each worker only ever touches indices exclusive
// to it, matching the disjoint-output-slice contract of spec.md §5 — no
// locking is required on the caller's side either.
func parallelFor(n int, fn func(i int)) {
	if n == 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// LocateBoxes runs LocateBox for every box in boxes and returns, for the
// concatenation of all hits, the query index (ii) and face index (jj) of
// each hit (spec.md §4.6). Output order is by query index regardless of
// worker scheduling: a count pass fixes each query's output range before
// any hit is written, so the fill pass can run fully in parallel without
// synchronization.
func LocateBoxes(boxes []Box, tree *CellTreeData) (ii, jj []int32) {
	n := len(boxes)
	counts := make([]int32, n+1)

	parallelFor(n, func(i int) {
		counts[i+1] = int32(LocateBox(boxes[i], tree, nil))
	})

	total := int32(0)
	for i := 1; i <= n; i++ {
		total += counts[i]
		counts[i] = total
	}

	ii = make([]int32, total)
	jj = make([]int32, total)

	parallelFor(n, func(i int) {
		start, end := counts[i], counts[i+1]
		for k := start; k < end; k++ {
			ii[k] = int32(i)
		}
		LocateBox(boxes[i], tree, jj[start:end])
	})

	return ii, jj
}

// LocateEdges runs LocateEdge for every segment in edges and returns the
// query index (ii), face index (jj), and parametric intersection columns
// (t) of every hit: t[:,0] and t[:,1] are t0 and t1; t[:,2] is reserved for
// caller-filled length, per spec.md §6.
func LocateEdges(edges [][2]Point, tree *CellTreeData) (ii, jj []int32, t [][3]float64) {
	n := len(edges)
	counts := make([]int32, n+1)

	parallelFor(n, func(i int) {
		count, _ := LocateEdge(edges[i][0], edges[i][1], tree, nil)
		counts[i+1] = int32(count)
	})

	total := int32(0)
	for i := 1; i <= n; i++ {
		total += counts[i]
		counts[i] = total
	}

	ii = make([]int32, total)
	jj = make([]int32, total)
	t = make([][3]float64, total)

	parallelFor(n, func(i int) {
		start, end := counts[i], counts[i+1]
		for k := start; k < end; k++ {
			ii[k] = int32(i)
		}
		a, b := edges[i][0], edges[i][1]
		_, hits := LocateEdge(a, b, tree, make([]Hit, 0, end-start))
		for k, h := range hits {
			jj[start+int32(k)] = h.Face
			t[start+int32(k)] = [3]float64{h.T0, h.T1, 0}
		}
	})

	return ii, jj, t
}
