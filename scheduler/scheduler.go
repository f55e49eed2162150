// Package scheduler runs the per-frame update steps in a fixed order.
package scheduler

// Frame identifies one tick.
type Frame struct {
	Index uint64
}

// Step is one named update function.
type Step struct {
	Name string
	Run  func(f Frame)
}

// Scheduler runs its steps synchronously, in registration order, once per Tick.
// Every step of a tick finishes before Tick returns, so whatever is rendered
// afterwards observes a consistent state.
type Scheduler struct {
	steps []Step
	next  uint64
}

func New(steps ...Step) *Scheduler {
	return &Scheduler{steps: steps}
}

// Tick runs one frame's steps and returns the frame that was run.
func (s *Scheduler) Tick() Frame {
	f := Frame{Index: s.next}
	for _, step := range s.steps {
		step.Run(f)
	}
	s.next++
	return f
}

// Steps lists the step names in execution order.
func (s *Scheduler) Steps() []string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name
	}
	return names
}
