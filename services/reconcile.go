package services

// reconcilePlan classifies a submitted child collection against the persisted
// one, keyed by optional identity (zero means "not persisted yet").
type reconcilePlan[T any] struct {
	Inserts []T // submitted without an identity
	Updates []T // submitted with an identity that matches a persisted item
	Deletes []T // persisted items absent from the submission
}

// reconcileByID builds the three-way diff used to synchronize a round's game
// set, but is written against any identifiable item so other child
// collections can reuse it. Submitted items carrying an identity that matches
// nothing persisted are ignored rather than re-inserted; identity continuity
// is the caller's contract and an unknown identity is a stale submission, not
// a new item.
func reconcileByID[T any](persisted, submitted []T, identity func(T) int) reconcilePlan[T] {
	persistedByID := make(map[int]T, len(persisted))
	for _, item := range persisted {
		persistedByID[identity(item)] = item
	}

	var plan reconcilePlan[T]
	submittedIDs := make(map[int]bool, len(submitted))
	for _, item := range submitted {
		id := identity(item)
		if id == 0 {
			plan.Inserts = append(plan.Inserts, item)
			continue
		}
		submittedIDs[id] = true
		if _, ok := persistedByID[id]; ok {
			plan.Updates = append(plan.Updates, item)
		}
	}

	for _, item := range persisted {
		if !submittedIDs[identity(item)] {
			plan.Deletes = append(plan.Deletes, item)
		}
	}
	return plan
}
