package matchmaker

// Pool is the ordered set of participants waiting for a partner. Insertion
// order is preserved so the fallback pass always picks the oldest waiter.
// Not safe for concurrent use; the Service's lock guards it.
type Pool struct {
	waiting []*Participant
}

func NewPool() *Pool {
	return &Pool{}
}

// Add appends p unless it is already waiting.
func (q *Pool) Add(p *Participant) {
	if q.Contains(p.ID) {
		return
	}
	q.waiting = append(q.waiting, p)
}

// Remove deletes the entry with the given id, reporting whether it was
// present. Removing an absent id is a no-op.
func (q *Pool) Remove(id string) bool {
	for i, p := range q.waiting {
		if p.ID == id {
			q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first waiter (insertion order) satisfying match.
func (q *Pool) Find(match func(*Participant) bool) *Participant {
	for _, p := range q.waiting {
		if match(p) {
			return p
		}
	}
	return nil
}

func (q *Pool) Contains(id string) bool {
	for _, p := range q.waiting {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (q *Pool) Len() int {
	return len(q.waiting)
}
