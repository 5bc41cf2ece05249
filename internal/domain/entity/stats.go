package entity

// Stats summarises reminder and acknowledgement counts by status.
type Stats struct {
	Reminders        map[ReminderStatus]int
	Acknowledgements map[AckStatus]int
}

func (s Stats) TotalReminders() int {
	total := 0
	for _, n := range s.Reminders {
		total += n
	}
	return total
}
