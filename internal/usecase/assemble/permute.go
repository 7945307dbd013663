package assemble

import (
	"context"
	"strings"
)

// Permute emits every ordered arrangement of r distinct bases for r = 1..N,
// joined without a separator. Arrangements come out in lexicographic order of
// input positions, shortest first. Repeated bases are collapsed to their first
// occurrence so no line is emitted twice.
func Permute(ctx context.Context, bases []string, emit Emit) error {
	items := uniq(bases)
	used := make([]bool, len(items))
	picked := make([]string, 0, len(items))

	var walk func(r int) error
	walk = func(r int) error {
		if len(picked) == r {
			if err := ctx.Err(); err != nil {
				return err
			}
			return emit(strings.Join(picked, ""))
		}
		for i, it := range items {
			if used[i] {
				continue
			}
			used[i] = true
			picked = append(picked, it)
			err := walk(r)
			picked = picked[:len(picked)-1]
			used[i] = false
			if err != nil {
				return err
			}
		}
		return nil
	}

	for r := 1; r <= len(items); r++ {
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}

func uniq(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
