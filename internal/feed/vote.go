package feed

import (
	"github.com/threadchain/threadchain/internal/models"
)

// ApplyVote is the pure single-user-single-vote transition function.
// Given the viewer's current vote state on a post and the requested
// direction, it returns the new state and the deltas to apply to the
// post's upvote and downvote counters:
//
//   - requesting the current direction again toggles the vote off;
//   - voting from a clean state adds one to the matching counter;
//   - anything else switches: the old counter loses one, the new
//     counter (if any) gains one.
//
// The function is total over all nine (state, direction) combinations;
// requesting VoteNone clears an existing vote.
func ApplyVote(current, requested models.VoteState) (models.VoteState, int64, int64) {
	if current == requested {
		up, down := counterDeltas(requested, -1)
		return models.VoteNone, up, down
	}
	if current == models.VoteNone {
		up, down := counterDeltas(requested, +1)
		return requested, up, down
	}
	oldUp, oldDown := counterDeltas(current, -1)
	newUp, newDown := counterDeltas(requested, +1)
	return requested, oldUp + newUp, oldDown + newDown
}

// counterDeltas maps a vote state to a delta on the matching counter.
func counterDeltas(state models.VoteState, delta int64) (int64, int64) {
	switch state {
	case models.VoteUp:
		return delta, 0
	case models.VoteDown:
		return 0, delta
	default:
		return 0, 0
	}
}

// clampCounter clamps a counter at zero. Reconciliation against
// concurrent external updates may otherwise drive it negative.
func clampCounter(v int64) (int64, bool) {
	if v < 0 {
		return 0, true
	}
	return v, false
}
