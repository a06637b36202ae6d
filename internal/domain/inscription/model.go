package inscription

type Activity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Slot is one (activity, time slot) cell. Capacity is a hard ceiling on
// registrations; capacity 0 marks a not-applicable cell, not a full one.
type Slot struct {
	ActivityID        string   `json:"activityId"`
	TimeSlotID        string   `json:"timeSlotId"`
	Capacity          int      `json:"capacity"`
	RegisteredUserIDs []string `json:"registeredUserIds"`
}

// Table holds at most one slot per (activity, time slot) pair.
type Table struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	TimeSlots  []TimeSlot `json:"timeSlots"`
	Slots      []Slot     `json:"slots"`
}

func (t Table) ActivityByID(id string) (Activity, bool) {
	for _, a := range t.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func (t Table) TimeSlotByID(id string) (TimeSlot, bool) {
	for _, ts := range t.TimeSlots {
		if ts.ID == id {
			return ts, true
		}
	}
	return TimeSlot{}, false
}

func (s Slot) HasRegistrant(userID string) bool {
	for _, id := range s.RegisteredUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
