package zset

import (
	"math/rand"
	"time"
)

// Pair is a by-value snapshot of a member and its score, returned from
// range queries. Callers never observe internal skip list nodes.
type Pair[S any, M comparable] struct {
	Member M
	Score  S
}

// OrderedSet pairs a membership map (member -> score, O(1) lookup and
// duplicate detection) with a skip list ordered by (score, member). Every
// public operation enters here, consults the map, mutates the skip list
// (at most one insert or delete, except that Add repositioning an existing
// member deletes and then reinserts it), and updates the map to
// re-establish the pairing invariant. OrderedSet is not safe for
// concurrent use.
type OrderedSet[S any, M comparable] struct {
	dict     map[M]S
	list     *skipList[S, M]
	scoreCap ScoreCapability[S]
}

// New creates an empty ordered set using the default skip list tuning and
// an instance-private RNG seeded from the current time.
func New[S any, M comparable](scoreCap ScoreCapability[S], memberOrder MemberOrder[M]) *OrderedSet[S, M] {
	return NewWithConfig(scoreCap, memberOrder, DefaultConfig())
}

// NewSeeded creates an empty ordered set whose level-assignment RNG is
// seeded deterministically, so that two instances built with the same seed
// and driven through the same operations produce identical skip lists.
func NewSeeded[S any, M comparable](scoreCap ScoreCapability[S], memberOrder MemberOrder[M], seed int64) *OrderedSet[S, M] {
	o := NewWithConfig(scoreCap, memberOrder, DefaultConfig())
	o.list.rng = rand.New(rand.NewSource(seed))
	return o
}

// NewWithConfig creates an empty ordered set with an explicit skip list
// configuration (MaxLevel, P).
func NewWithConfig[S any, M comparable](scoreCap ScoreCapability[S], memberOrder MemberOrder[M], cfg Config) *OrderedSet[S, M] {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &OrderedSet[S, M]{
		dict:     make(map[M]S),
		list:     newSkipList[S, M](scoreCap, memberOrder, cfg, rng),
		scoreCap: scoreCap,
	}
}

// Add inserts member with score, or repositions it if it already exists
// with a different score. Adding a member at its current score is a no-op
// in both structures.
func (o *OrderedSet[S, M]) Add(score S, member M) {
	old, exists := o.dict[member]
	if exists {
		if o.scoreCap.Compare(old, score) == 0 {
			return
		}
		o.list.delete(old, member)
	}
	o.dict[member] = score
	o.list.insert(score, member)
}

// IncrementBy adds delta to member's current score (or sets it to delta if
// member is absent) and returns the resulting score. If the score
// capability's Sum cannot combine the operands, the error propagates and
// no state changes.
func (o *OrderedSet[S, M]) IncrementBy(delta S, member M) (S, error) {
	old, exists := o.dict[member]
	newScore := delta
	if exists {
		sum, err := o.scoreCap.Sum(old, delta)
		if err != nil {
			var zero S
			return zero, err
		}
		newScore = sum
	}
	o.Add(newScore, member)
	return newScore, nil
}

// Remove deletes member from both structures and reports whether it was
// present.
func (o *OrderedSet[S, M]) Remove(member M) bool {
	score, exists := o.dict[member]
	if !exists {
		return false
	}
	delete(o.dict, member)
	o.list.delete(score, member)
	return true
}

// Score returns member's current score, or false if member is absent.
func (o *OrderedSet[S, M]) Score(member M) (S, bool) {
	s, ok := o.dict[member]
	return s, ok
}

// Rank returns member's 0-based ascending rank, or -1 if absent.
func (o *OrderedSet[S, M]) Rank(member M) int {
	score, exists := o.dict[member]
	if !exists {
		return -1
	}
	r := o.list.getRank(score, member)
	if r == 0 {
		return -1
	}
	return r - 1
}

// ReverseRank returns member's 0-based descending rank, or -1 if absent.
// It always equals Count()-1-Rank(member).
func (o *OrderedSet[S, M]) ReverseRank(member M) int {
	r := o.Rank(member)
	if r == -1 {
		return -1
	}
	return o.Count() - 1 - r
}

// Count returns the number of members in the set.
func (o *OrderedSet[S, M]) Count() int {
	return o.list.length
}

// RangeByScore returns members whose score falls in r, skipping offset
// matches and returning at most limit of them (limit < 0 means
// unlimited), in ascending score order unless reverse is true. offset must
// be non-negative.
func (o *OrderedSet[S, M]) RangeByScore(r ScoreRange[S], offset, limit int, reverse bool) ([]Pair[S, M], error) {
	if offset < 0 {
		return nil, ErrNegativeOffset
	}

	var x *node[S, M]
	if reverse {
		x = o.list.lastInRange(r)
	} else {
		x = o.list.firstInRange(r)
	}
	for i := 0; i < offset && x != nil; i++ {
		if reverse {
			x = x.back
		} else {
			x = x.levels[0].forward
		}
	}

	result := make([]Pair[S, M], 0)
	for x != nil && (limit < 0 || len(result) < limit) {
		if reverse {
			if !r.gteMin(o.scoreCap, x.score) {
				break
			}
		} else if !r.lteMax(o.scoreCap, x.score) {
			break
		}
		result = append(result, Pair[S, M]{Member: x.member, Score: x.score})
		if reverse {
			x = x.back
		} else {
			x = x.levels[0].forward
		}
	}
	return result, nil
}

// RangeByRank returns members by 0-based inclusive rank range [start, end].
// Negative indices count from the end (-1 is the last element). The range
// is clamped to [0, Count()-1]; an inverted or out-of-bounds range returns
// nil. reverse returns members in descending order instead of ascending.
func (o *OrderedSet[S, M]) RangeByRank(start, end int, reverse bool) []Pair[S, M] {
	length := o.Count()
	if length == 0 {
		return nil
	}
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end += length
	}
	if end > length-1 {
		end = length - 1
	}
	if start > end || start >= length {
		return nil
	}

	count := end - start + 1
	result := make([]Pair[S, M], 0, count)
	if reverse {
		x := o.list.getElementByRank(length - start)
		for x != nil && len(result) < count {
			result = append(result, Pair[S, M]{Member: x.member, Score: x.score})
			x = x.back
		}
		return result
	}

	x := o.list.getElementByRank(start + 1)
	for x != nil && len(result) < count {
		result = append(result, Pair[S, M]{Member: x.member, Score: x.score})
		x = x.levels[0].forward
	}
	return result
}

// RemoveRangeByScore deletes every member whose score falls in r and
// returns the count removed.
func (o *OrderedSet[S, M]) RemoveRangeByScore(r ScoreRange[S]) int {
	removed := o.list.deleteRangeByScore(r)
	for _, p := range removed {
		delete(o.dict, p.Member)
	}
	return len(removed)
}

// RemoveRangeByRank deletes members by 0-based inclusive rank range
// [start, end] (negative indices count from the end, same normalization as
// RangeByRank) and returns the count removed.
func (o *OrderedSet[S, M]) RemoveRangeByRank(start, end int) int {
	length := o.Count()
	if length == 0 {
		return 0
	}
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end += length
	}
	if end > length-1 {
		end = length - 1
	}
	if start > end || start >= length {
		return 0
	}

	removed := o.list.deleteRangeByRank(start+1, end+1)
	for _, p := range removed {
		delete(o.dict, p.Member)
	}
	return len(removed)
}

// CountInRange returns the number of members whose score falls in r,
// computed from two rank lookups rather than materializing the range.
func (o *OrderedSet[S, M]) CountInRange(r ScoreRange[S]) int {
	first := o.list.firstInRange(r)
	if first == nil {
		return 0
	}
	last := o.list.lastInRange(r)
	return o.list.getRank(last.score, last.member) - o.list.getRank(first.score, first.member) + 1
}

// PopMin removes and returns the lowest-scored member, or false if empty.
func (o *OrderedSet[S, M]) PopMin() (Pair[S, M], bool) {
	first := o.list.header.levels[0].forward
	if first == nil {
		return Pair[S, M]{}, false
	}
	p := Pair[S, M]{Member: first.member, Score: first.score}
	o.Remove(first.member)
	return p, true
}

// PopMax removes and returns the highest-scored member, or false if empty.
func (o *OrderedSet[S, M]) PopMax() (Pair[S, M], bool) {
	last := o.list.tail
	if last == nil {
		return Pair[S, M]{}, false
	}
	p := Pair[S, M]{Member: last.member, Score: last.score}
	o.Remove(last.member)
	return p, true
}

// Clone returns an independent copy of the set. The copy shares no state
// with the original; mutating one never affects the other. Clone does not
// make either set safe for concurrent use - it hands the caller two
// independent single-threaded structures.
func (o *OrderedSet[S, M]) Clone() *OrderedSet[S, M] {
	clone := NewWithConfig(o.scoreCap, o.list.memberOrder, o.list.cfg)
	clone.list.rng = rand.New(rand.NewSource(o.list.rng.Int63()))
	x := o.list.header.levels[0].forward
	for x != nil {
		clone.Add(x.score, x.member)
		x = x.levels[0].forward
	}
	return clone
}
