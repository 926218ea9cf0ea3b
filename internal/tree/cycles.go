package tree

import (
	"maps"
	"slices"
	"strings"
)

// DetectCycles walks the parent relation of the forest once and reports
// each distinct loop. Every node has at most one parent, so a loop is found
// when a walk meets a node still in progress on that same walk; only the
// loop members are reported, not the path that led into it.
func DetectCycles(f *Forest) []Failure {
	const (
		unvisited = iota
		inProgress
		done
	)

	state := make(map[string]int, f.Len())
	position := make(map[string]int)
	signatures := make(map[string]struct{})
	var loops [][]string

	for _, start := range slices.Sorted(maps.Keys(f.byID)) {
		if state[start] != unvisited {
			continue
		}

		var path []string
		for cur := start; ; {
			if state[cur] == done {
				break
			}
			if state[cur] == inProgress {
				loop := slices.Clone(path[position[cur]:])
				slices.Sort(loop)
				key := strings.Join(loop, "\x00")
				if _, dup := signatures[key]; !dup {
					signatures[key] = struct{}{}
					loops = append(loops, loop)
				}
				break
			}

			state[cur] = inProgress
			position[cur] = len(path)
			path = append(path, cur)

			tn, _ := f.Lookup(cur)
			if tn.IsTopLevel() {
				break
			}
			parentID := *tn.ParentID
			if _, ok := f.Lookup(parentID); !ok {
				break
			}
			cur = parentID
		}

		for _, id := range path {
			state[id] = done
		}
	}

	slices.SortFunc(loops, func(a, b []string) int { return slices.Compare(a, b) })
	failures := make([]Failure, 0, len(loops))
	for _, loop := range loops {
		failures = append(failures, CircularParentChildLoop{NodeIDs: loop})
	}
	return failures
}
