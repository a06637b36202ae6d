package inscription

import (
	"reflect"
	"testing"
)

func kermesseTable() Table {
	return Table{
		ID:    "table-kermesse",
		Title: "Planning des Stands - Kermesse",
		Activities: []Activity{
			{ID: "act-peche", Name: "Pêche à la ligne"},
			{ID: "act-bar", Name: "Buvette"},
		},
		TimeSlots: []TimeSlot{
			{ID: "slot-10-12", Label: "10h00 - 12h00"},
			{ID: "slot-12-14", Label: "12h00 - 14h00"},
		},
		Slots: []Slot{
			{ActivityID: "act-peche", TimeSlotID: "slot-10-12", Capacity: 2, RegisteredUserIDs: []string{"user-2"}},
			{ActivityID: "act-peche", TimeSlotID: "slot-12-14", Capacity: 1, RegisteredUserIDs: []string{"user-3"}},
			{ActivityID: "act-bar", TimeSlotID: "slot-10-12", Capacity: 0, RegisteredUserIDs: []string{}},
			{ActivityID: "act-bar", TimeSlotID: "slot-12-14", Capacity: 3, RegisteredUserIDs: []string{}},
		},
	}
}

func slotFor(t *testing.T, table Table, activityID, timeSlotID string) Slot {
	t.Helper()
	for _, slot := range table.Slots {
		if slot.ActivityID == activityID && slot.TimeSlotID == timeSlotID {
			return slot
		}
	}
	t.Fatalf("slot (%s,%s) not found", activityID, timeSlotID)
	return Slot{}
}

func TestRegisterAppendsToSlot(t *testing.T) {
	table := kermesseTable()
	updated := Register(table, "user-5", []SlotKey{{ActivityID: "act-peche", TimeSlotID: "slot-10-12"}})

	slot := slotFor(t, updated, "act-peche", "slot-10-12")
	if !reflect.DeepEqual(slot.RegisteredUserIDs, []string{"user-2", "user-5"}) {
		t.Fatalf("expected [user-2 user-5], got %v", slot.RegisteredUserIDs)
	}

	// input table untouched
	original := slotFor(t, table, "act-peche", "slot-10-12")
	if !reflect.DeepEqual(original.RegisteredUserIDs, []string{"user-2"}) {
		t.Fatalf("expected input untouched, got %v", original.RegisteredUserIDs)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	table := kermesseTable()
	request := []SlotKey{{ActivityID: "act-peche", TimeSlotID: "slot-10-12"}}

	once := Register(table, "user-5", request)
	twice := Register(once, "user-5", request)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected identical state after repeated register, got %+v vs %+v", once, twice)
	}
}

func TestRegisterRespectsCapacity(t *testing.T) {
	table := kermesseTable()
	// slot-12-14 on act-peche has capacity 1 and is already full.
	updated := Register(table, "user-5", []SlotKey{{ActivityID: "act-peche", TimeSlotID: "slot-12-14"}})

	slot := slotFor(t, updated, "act-peche", "slot-12-14")
	if !reflect.DeepEqual(slot.RegisteredUserIDs, []string{"user-3"}) {
		t.Fatalf("expected full slot unchanged, got %v", slot.RegisteredUserIDs)
	}
}

func TestRegisterZeroCapacityCellNeverAccepts(t *testing.T) {
	table := kermesseTable()
	updated := Register(table, "user-5", []SlotKey{{ActivityID: "act-bar", TimeSlotID: "slot-10-12"}})

	slot := slotFor(t, updated, "act-bar", "slot-10-12")
	if len(slot.RegisteredUserIDs) != 0 {
		t.Fatalf("expected zero-capacity cell to stay empty, got %v", slot.RegisteredUserIDs)
	}
}

func TestRegisterUnknownSlotIsSilentNoOp(t *testing.T) {
	table := kermesseTable()
	updated := Register(table, "user-5", []SlotKey{{ActivityID: "act-missing", TimeSlotID: "slot-10-12"}})
	if !reflect.DeepEqual(table, updated) {
		t.Fatalf("expected table unchanged for unknown slot")
	}
}

func TestRegisterBatchPartialSuccess(t *testing.T) {
	table := kermesseTable()
	updated := Register(table, "user-5", []SlotKey{
		{ActivityID: "act-peche", TimeSlotID: "slot-10-12"}, // has room
		{ActivityID: "act-peche", TimeSlotID: "slot-12-14"}, // full
		{ActivityID: "act-bar", TimeSlotID: "slot-12-14"},   // has room
		{ActivityID: "act-missing", TimeSlotID: "slot-9"},   // unknown
	})

	if got := slotFor(t, updated, "act-peche", "slot-10-12").RegisteredUserIDs; !reflect.DeepEqual(got, []string{"user-2", "user-5"}) {
		t.Fatalf("expected registration in free slot, got %v", got)
	}
	if got := slotFor(t, updated, "act-peche", "slot-12-14").RegisteredUserIDs; !reflect.DeepEqual(got, []string{"user-3"}) {
		t.Fatalf("expected full slot skipped, got %v", got)
	}
	if got := slotFor(t, updated, "act-bar", "slot-12-14").RegisteredUserIDs; !reflect.DeepEqual(got, []string{"user-5"}) {
		t.Fatalf("expected registration in second free slot, got %v", got)
	}

	for _, slot := range updated.Slots {
		if len(slot.RegisteredUserIDs) > slot.Capacity {
			t.Fatalf("capacity exceeded on slot %+v", slot)
		}
	}
}

func TestRegisterIsAdditiveOnly(t *testing.T) {
	table := kermesseTable()
	// Re-submitting a stale selection that omits an existing registration must
	// not remove it.
	updated := Register(table, "user-2", []SlotKey{{ActivityID: "act-bar", TimeSlotID: "slot-12-14"}})

	if got := slotFor(t, updated, "act-peche", "slot-10-12").RegisteredUserIDs; !reflect.DeepEqual(got, []string{"user-2"}) {
		t.Fatalf("expected prior registration kept, got %v", got)
	}
	if got := slotFor(t, updated, "act-bar", "slot-12-14").RegisteredUserIDs; !reflect.DeepEqual(got, []string{"user-2"}) {
		t.Fatalf("expected new registration added, got %v", got)
	}
}

func TestRegisterEmptyRequest(t *testing.T) {
	table := kermesseTable()
	if updated := Register(table, "user-5", nil); !reflect.DeepEqual(table, updated) {
		t.Fatalf("expected empty request to change nothing")
	}
}
