package planner

import "github.com/erfan-rahmanian/barnameh/internal/model"

// HoursPerDay is the number of agenda slots in a day view.
const HoursPerDay = 24

// HourBuckets partitions a day's events into the 24 hourly agenda slots.
// Every event lands in exactly one bucket; order within a bucket follows
// insertion order.
func HourBuckets(events []*model.Event) [][]*model.Event {
	buckets := make([][]*model.Event, HoursPerDay)
	for hour := range buckets {
		buckets[hour] = EventsForHour(events, hour)
	}

	return buckets
}
