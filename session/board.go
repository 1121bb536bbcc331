package session

import "time"

// Status is one row of the session board.
type Status struct {
	Info
	Active bool
	// Minutes until the session next opens (when closed) or closes (when open).
	Until int
}

// Snapshot is a board evaluated at a single instant.
type Snapshot struct {
	At       time.Time
	Now      TimeOfDay
	Statuses []Status
}

// Board evaluates every session at now, preserving table order.
func Board(infos []Info, now TimeOfDay) []Status {
	out := make([]Status, 0, len(infos))
	for _, i := range infos {
		s := Status{Info: i, Active: i.ActiveAt(now)}
		if s.Active {
			s.Until = minutesUntil(now, i.End)
		} else {
			s.Until = minutesUntil(now, i.Start)
		}
		out = append(out, s)
	}
	return out
}

// Evaluate reads clock once and builds a snapshot in loc.
func Evaluate(clock Clock, loc *time.Location, infos []Info) Snapshot {
	t := clock.Now()
	now := At(t, loc)
	return Snapshot{
		At:       t.In(loc),
		Now:      now,
		Statuses: Board(infos, now),
	}
}

// ActiveNames lists the open sessions in the snapshot.
func (s Snapshot) ActiveNames() []string {
	var out []string
	for _, st := range s.Statuses {
		if st.Active {
			out = append(out, st.Name)
		}
	}
	return out
}

func minutesUntil(now, target TimeOfDay) int {
	d := int((target - now).normalize())
	if d == 0 {
		return MinutesPerDay
	}
	return d
}
