package inscription

// SlotKey names one (activity, time slot) cell in a registration request.
type SlotKey struct {
	ActivityID string `json:"activityId"`
	TimeSlotID string `json:"timeSlotId"`
}

// Register applies a batch of requested slot selections for one user and
// returns the updated table. The operation is additive and best-effort:
// requested cells that are unknown, already full, or already held by the
// requester are skipped silently, and cells not named in the request are left
// untouched. Capacity is never exceeded; re-submitting the same selection set
// is a no-op.
func Register(table Table, userID string, requested []SlotKey) Table {
	if len(requested) == 0 {
		return table
	}

	wanted := make(map[SlotKey]struct{}, len(requested))
	for _, key := range requested {
		wanted[key] = struct{}{}
	}

	slots := make([]Slot, len(table.Slots))
	for i, slot := range table.Slots {
		key := SlotKey{ActivityID: slot.ActivityID, TimeSlotID: slot.TimeSlotID}
		if _, ok := wanted[key]; ok {
			if !slot.HasRegistrant(userID) && len(slot.RegisteredUserIDs) < slot.Capacity {
				registered := make([]string, 0, len(slot.RegisteredUserIDs)+1)
				registered = append(registered, slot.RegisteredUserIDs...)
				registered = append(registered, userID)
				slot.RegisteredUserIDs = registered
			}
		}
		slots[i] = slot
	}

	table.Slots = slots
	return table
}

// UpdateTable replaces the table with the same id in the collection. Unknown
// ids are silent no-ops.
func UpdateTable(tables []Table, updated Table) []Table {
	result := make([]Table, len(tables))
	for i, table := range tables {
		if table.ID == updated.ID {
			result[i] = updated
			continue
		}
		result[i] = table
	}
	return result
}

func TableByID(tables []Table, id string) (Table, bool) {
	for _, table := range tables {
		if table.ID == id {
			return table, true
		}
	}
	return Table{}, false
}
