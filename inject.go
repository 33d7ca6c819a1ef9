package tooltip

// InjectMove queues a pointer sample at the given screen coordinates with no
// buttons held. Queued samples replace the real pointer, one per Update.
func (s *System) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerState{X: x, Y: y})
}

// InjectPress queues a pointer sample with the left button held.
func (s *System) InjectPress(x, y float64) {
	p := PointerState{X: x, Y: y}
	p.Buttons[MouseButtonLeft] = true
	s.injectQueue = append(s.injectQueue, p)
}

// InjectRelease queues a pointer sample with no buttons held. It is the same
// sample as InjectMove; the separate name keeps scripts readable.
func (s *System) InjectRelease(x, y float64) {
	s.InjectMove(x, y)
}

// InjectHold queues frames identical samples at (x, y), modelling a pointer
// resting in place.
func (s *System) InjectHold(x, y float64, frames int) {
	for range frames {
		s.InjectMove(x, y)
	}
}

// nextInjected pops the next queued sample.
func (s *System) nextInjected() (PointerState, bool) {
	if len(s.injectQueue) == 0 {
		return PointerState{}, false
	}
	p := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return p, true
}
