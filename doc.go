// Package zset implements an in-memory ordered set: a container that pairs
// each unique member with a score and supports rank-ordered access, range
// queries by score and by rank, and bulk range deletions in O(log n).
//
// The structure is modeled on Redis's sorted set: a hash map from member to
// score for O(1) lookup, paired with an augmented skip list sorted by
// (score, member) whose forward pointers carry a span, letting the same
// index answer both by-score and by-rank queries without a secondary
// structure.
//
// The set is not safe for concurrent use; callers must serialize access to
// a given instance themselves.
package zset
