package dfrepr

// truncationPlan records which element indices a render keeps. When
// truncated, head and tail surround a single ellipsis marker supplied by the
// renderer. Unkept indices are never formatted.
type truncationPlan struct {
	head, tail []int
	truncated  bool
}

// truncate decides the head/tail split for length elements under maxItems.
//
// The split policy is a literal rule table, not a formula: once length
// exceeds maxItems, the shown count drops to minItems (when 0 < minItems <
// maxItems), and head and tail each get floor(shown/2) elements. A limit of
// 1 therefore keeps nothing but the ellipsis marker.
func truncate(length, maxItems, minItems int) truncationPlan {
	if maxItems <= 0 || length <= maxItems {
		head := make([]int, length)
		for i := range head {
			head[i] = i
		}
		return truncationPlan{head: head}
	}
	shown := maxItems
	if minItems > 0 && minItems < maxItems {
		shown = minItems
	}
	n := shown / 2
	head := make([]int, n)
	tail := make([]int, n)
	for i := 0; i < n; i++ {
		head[i] = i
		tail[i] = length - n + i
	}
	return truncationPlan{head: head, tail: tail, truncated: true}
}

// kept returns head and tail indices in order, without the marker.
func (p truncationPlan) kept() []int {
	out := make([]int, 0, len(p.head)+len(p.tail))
	out = append(out, p.head...)
	return append(out, p.tail...)
}
