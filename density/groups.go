// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"iter"
	"runtime"
	"sync"

	"github.com/katalvlaran/fixmat/table"
)

const opFromGroups = "FromGroups"

// GroupMap pairs a group value with the density map of its fixations.
type GroupMap struct {
	Value table.Value
	Map   *Map
}

// FromGroups computes one density map per group of seq (typically the
// result of view.GroupBy) with FromTable and the same opts.
// MAIN DESCRIPTION:
//   - Drains seq, then fans the groups out to at most `workers` goroutines
//     (workers <= 0 means GOMAXPROCS).
//   - Each job reads only its own sub-table and writes only its own result
//     slot; there is no other shared state.
//   - Results are returned in group order. If several groups fail, the error
//     of the earliest group is returned.
//
// Complexity:
//   - Time O(G·cost(FromTable)/workers), Space O(G·R·C).
func FromGroups(seq iter.Seq2[*table.Table, table.Value], opts Options, workers int) ([]GroupMap, error) {
	if seq == nil {
		return nil, nil
	}
	type job struct {
		t *table.Table
		v table.Value
	}
	var jobs []job
	for t, v := range seq {
		jobs = append(jobs, job{t: t, v: v})
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(jobs))

	out := make([]GroupMap, len(jobs))
	errs := make([]error, len(jobs))
	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range next {
				m, err := FromTable(jobs[k].t, opts)
				out[k] = GroupMap{Value: jobs[k].v, Map: m}
				errs[k] = err
			}
		}()
	}
	for k := range jobs {
		next <- k
	}
	close(next)
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: group %s: %w", opFromGroups, jobs[k].v, err)
		}
	}

	return out, nil
}
