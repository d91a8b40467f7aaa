package allocate

import "github.com/katalvlaran/fairdiv/division"

// causesEnvy reports whether handing item to agent would make agent
// preferred over an already-served agent: some other agent holding at
// least one item ranks item strictly better than agent does, with both
// agents ranking the item at all.
//
// This is a heuristic proxy operating purely on rank position, not a
// utility comparison. Membership means "appears inside some bundle" of
// the agent's ranking list.
func causesEnvy(agent division.Agent, item division.Item, alloc division.Allocation, rankings division.Rankings) bool {
	mine := division.RankIndex(rankings[agent], item)
	if mine == division.Unranked {
		return false
	}

	for other, held := range alloc {
		if other == agent || len(held) == 0 {
			continue
		}
		theirs := division.RankIndex(rankings[other], item)
		if theirs != division.Unranked && theirs < mine {
			return true
		}
	}

	return false
}
