// internal/guess/enumerate.go
//
// Push-style enumerators over letter strings. Both treat their input as a
// sequence of selectable units: repeated letters are distinct picks, so the
// caller is responsible for string-level deduplication.

package guess

import "iter"

// combinations yields every size-k selection of s's letters, indices
// strictly increasing, letters kept in input order. k == 0 yields the empty
// string once; k > len(s) yields nothing.
func combinations(s string, k int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if k > len(s) {
			return
		}
		buf := make([]byte, k)
		var pick func(start, depth int) bool
		pick = func(start, depth int) bool {
			if depth == k {
				return yield(string(buf))
			}
			for i := start; i <= len(s)-(k-depth); i++ {
				buf[depth] = s[i]
				if !pick(i+1, depth+1) {
					return false
				}
			}
			return true
		}
		pick(0, 0)
	}
}

// permutations yields every ordering of s's letters in index order. The
// empty string yields one empty permutation.
func permutations(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		n := len(s)
		buf := make([]byte, n)
		used := make([]bool, n)
		var place func(depth int) bool
		place = func(depth int) bool {
			if depth == n {
				return yield(string(buf))
			}
			for i := 0; i < n; i++ {
				if used[i] {
					continue
				}
				used[i] = true
				buf[depth] = s[i]
				if !place(depth + 1) {
					return false
				}
				used[i] = false
			}
			return true
		}
		place(0)
	}
}
