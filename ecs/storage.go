package ecs

// entityStore hands out entity slots and recycles them. Slot 0 is never
// used so the zero Entity stays invalid.
type entityStore struct {
	generations []generation
	free        []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return makeEntity(id, s.generations[id-1])
	}
	s.generations = append(s.generations, 0)
	return makeEntity(entityID(len(s.generations)), 0)
}

func (s *entityStore) destroy(e Entity) {
	if !s.isAlive(e) {
		return
	}
	id := e.id()
	s.generations[id-1]++
	s.free = append(s.free, id)
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.generations) {
		return false
	}
	return s.generations[id-1] == e.generation()
}
