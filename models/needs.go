package models

// NeedSet is an ordered selection of needs. Toggling an id removes it when
// present and appends it otherwise, so two toggles of the same id cancel out.
type NeedSet struct {
	ids []string
}

// NewNeedSet builds a set from ids, dropping duplicates and keeping first
// occurrence order.
func NewNeedSet(ids []string) NeedSet {
	var s NeedSet
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s NeedSet) Has(id string) bool {
	for _, cur := range s.ids {
		if cur == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of id.
func (s *NeedSet) Toggle(id string) {
	for i, cur := range s.ids {
		if cur == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// IDs returns a copy of the selection; never nil.
func (s NeedSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s NeedSet) Len() int { return len(s.ids) }
