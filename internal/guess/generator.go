// internal/guess/generator.go
//
// Core candidate generator for the Wordle helper.
// Responsibilities:
//   - Validate constraint inputs eagerly (pattern alphabet, multiset sizes).
//   - Enumerate every non-redundant fill of a pattern's unknown slots from
//     the present + available letter multisets.
//   - Filter candidates against an optional dictionary.
//
// Notes:
//   - The returned sequence is lazy and single-use; stopping consumption
//     stops all enumeration work.
//   - Two seen-sets are scoped to one Generate call: one deduplicates letter
//     combinations picked from `available`, the other deduplicates final
//     orderings globally so no guess is ever yielded twice.
package guess

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

const unknown = '?'

var (
	// ErrMalformedPattern reports characters outside a-z and '?'.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrInvalidConstraint reports more present letters than unknown slots.
	ErrInvalidConstraint = errors.New("invalid constraint")
)

// Dictionary is a membership test over candidate words.
// Implementations may be backed by a map, a file-loaded set, SQLite, etc.
type Dictionary interface {
	Contains(word string) bool
}

// Generate enumerates candidate guesses for a partially known word.
//
// pattern is the previous guess with '?' marking unknown positions.
// available is a multiset of letters eligible for unknown slots (a letter
// that may occur twice must appear twice). present is a multiset of letters
// known to be in the word at an unknown position; every present letter is
// used in every candidate. dict, when non-nil, filters candidates to
// dictionary members.
//
// Validation runs before the sequence is returned, so a non-nil error means
// no enumeration work has started. The sequence itself never fails; it is
// lazy and stops early when the consumer does.
func Generate(pattern, available, present string, dict Dictionary) (iter.Seq[string], error) {
	if err := validate(pattern, available, present); err != nil {
		return nil, err
	}

	nUnknown := strings.Count(pattern, string(unknown))
	nPresent := len(present)
	if nPresent > nUnknown {
		return nil, fmt.Errorf("%w: %d present letters for %d unknown slots",
			ErrInvalidConstraint, nPresent, nUnknown)
	}

	return func(yield func(string) bool) {
		permsSeen := make(map[string]struct{})

		// emit walks every distinct ordering of one pool and substitutes it
		// into the pattern. Returns false once the consumer stops.
		emit := func(pool string) bool {
			for perm := range permutations(pool) {
				if _, ok := permsSeen[perm]; ok {
					continue
				}
				permsSeen[perm] = struct{}{}
				g := substitute(pattern, perm)
				if dict != nil && !dict.Contains(g) {
					continue
				}
				if !yield(g) {
					return false
				}
			}
			return true
		}

		if nUnknown == nPresent {
			// Every slot is owned by a present letter; one pool.
			emit(present)
			return
		}

		combosSeen := make(map[string]struct{})
		for combo := range combinations(available, nUnknown-nPresent) {
			if _, ok := combosSeen[combo]; ok {
				continue
			}
			combosSeen[combo] = struct{}{}
			if !emit(combo + present) {
				return
			}
		}
	}, nil
}

// validate rejects malformed inputs before any enumeration begins.
func validate(pattern, available, present string) error {
	for _, r := range pattern {
		if r != unknown && (r < 'a' || r > 'z') {
			return fmt.Errorf("%w: %q in pattern %q", ErrMalformedPattern, r, pattern)
		}
	}
	for _, r := range available {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q in available letters", ErrMalformedPattern, r)
		}
	}
	for _, r := range present {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q in present letters", ErrMalformedPattern, r)
		}
	}
	return nil
}

// substitute fills pattern's unknown slots left-to-right from letters.
// len(letters) must equal the number of '?' in pattern.
func substitute(pattern, letters string) string {
	out := []byte(pattern)
	next := 0
	for i := 0; i < len(out); i++ {
		if out[i] == unknown {
			out[i] = letters[next]
			next++
		}
	}
	return string(out)
}
