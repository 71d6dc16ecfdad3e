package zset

import (
	"fmt"
	"strings"
)

// Dump renders the level-0 sequence as one line per member, for debugging
// only. No ordering or format guarantee is made beyond ascending rank.
func (o *OrderedSet[S, M]) Dump() string {
	var b strings.Builder
	x := o.list.header.levels[0].forward
	for i := 0; x != nil; i++ {
		fmt.Fprintf(&b, "{rank:%d, obj:%v, score:%v}\n", i, x.member, x.score)
		x = x.levels[0].forward
	}
	return b.String()
}
