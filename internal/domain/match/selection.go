package match

import "github.com/riskibarqy/starpick-admin/internal/domain/player"

// Selection is an insertion-ordered set of players keyed by id.
type Selection struct {
	order []int64
	byID  map[int64]player.Player
}

func NewSelection() *Selection {
	return &Selection{byID: make(map[int64]player.Player)}
}

// Add inserts p and reports whether it was new. Adding a present id is a no-op.
func (s *Selection) Add(p player.Player) bool {
	if s.byID == nil {
		s.byID = make(map[int64]player.Player)
	}
	if _, ok := s.byID[p.ID]; ok {
		return false
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return true
}

func (s *Selection) Remove(id int64) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Selection) Contains(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) IDs() []int64 {
	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) Players() []player.Player {
	out := make([]player.Player, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Selection) Clear() {
	s.order = nil
	s.byID = make(map[int64]player.Player)
}
