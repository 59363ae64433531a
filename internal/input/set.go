package input

// Set is an unordered set of actions.
type Set[A comparable] map[A]struct{}

// NewSet returns a set holding actions.
func NewSet[A comparable](actions ...A) Set[A] {
	s := make(Set[A], len(actions))
	for _, a := range actions {
		s[a] = struct{}{}
	}
	return s
}

func (s Set[A]) Add(action A) {
	s[action] = struct{}{}
}

func (s Set[A]) Contains(action A) bool {
	_, ok := s[action]
	return ok
}

func (s Set[A]) Len() int {
	return len(s)
}
