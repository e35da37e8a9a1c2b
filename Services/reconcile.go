package Services

// partitionByID reconciles a submitted full collection against the persisted
// one. Persisted items whose id never shows up in the submission are slated
// for soft delete; submitted items whose id matches a surviving persisted item
// are overwritten; everything else (no id, or an id the store does not know)
// is created fresh. The three sets are disjoint and together cover every
// submitted item and every persisted id exactly once.
func partitionByID[S any, P any](
	submitted []S,
	persisted []P,
	submittedID func(S) uint,
	persistedID func(P) uint,
) (toCreate []S, toUpdate []S, toDelete []P) {
	submittedIDs := make(map[uint]struct{}, len(submitted))
	for _, item := range submitted {
		if id := submittedID(item); id != 0 {
			submittedIDs[id] = struct{}{}
		}
	}

	persistedIDs := make(map[uint]struct{}, len(persisted))
	for _, item := range persisted {
		id := persistedID(item)
		persistedIDs[id] = struct{}{}
		if _, ok := submittedIDs[id]; !ok {
			toDelete = append(toDelete, item)
		}
	}

	for _, item := range submitted {
		if id := submittedID(item); id != 0 {
			if _, ok := persistedIDs[id]; ok {
				toUpdate = append(toUpdate, item)
				continue
			}
		}
		toCreate = append(toCreate, item)
	}
	return toCreate, toUpdate, toDelete
}
