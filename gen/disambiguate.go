package gen

import (
	"fmt"
	"sort"

	"github.com/teranos/plugingen/descriptor"
)

// NameCollisionMarker separates a disambiguated plugin name from its numeric
// suffix. A double underscore makes synthesized names stick out visually and
// cannot collide with anything else the generator emits.
const NameCollisionMarker = "__"

// Disambiguate renames descriptors that share a display name within one
// owner group so that every name is unique.
//
// Names are compared in sorted order, but the caller's slice keeps its
// insertion order: the scan works on a copy. The numeric suffix is drawn
// from a single counter shared across the whole call rather than reset per
// collision group; a run of k equal names yields k renamed descriptors with
// strictly increasing suffixes, and unique names are never touched. Numeric
// suffixes are used instead of encoding parameter types so disambiguated
// names stay short enough for artifact name limits.
func Disambiguate(descriptors []descriptor.Descriptor) {
	if len(descriptors) < 2 {
		return
	}

	sorted := make([]descriptor.Descriptor, len(descriptors))
	copy(sorted, descriptors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})

	counter := 0
	pending := sorted[0]
	pendingName := pending.Name()
	for _, next := range sorted[1:] {
		if next.Name() == pendingName {
			if pending != nil {
				counter = rename(pending, counter)
				pending = nil
			}
			counter = rename(next, counter)
		} else {
			pending = next
			pendingName = next.Name()
		}
	}
}

// rename appends the current counter value to the descriptor's name and
// returns the advanced counter.
func rename(d descriptor.Descriptor, counter int) int {
	d.SetName(fmt.Sprintf("%s%s%d", d.Name(), NameCollisionMarker, counter))
	return counter + 1
}
