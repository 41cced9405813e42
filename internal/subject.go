package internal

import "slices"

// Subject is a producer that multicasts every pushed notification to its
// current subscribers. Once terminated it replays the terminal notification
// to late subscribers and drops everything else.
type Subject struct {
	subscribers []*Subscriber

	stopped  bool
	hasError bool
	err      error
}

func NewSubject() *Subject {
	return &Subject{}
}

func (s *Subject) Next(v any) {
	if s.stopped {
		return
	}

	// snapshot: a subscriber may unsubscribe from inside its own delivery
	for _, sbr := range slices.Clone(s.subscribers) {
		sbr.Next(v)
	}
}

func (s *Subject) Error(err error) {
	if s.stopped {
		return
	}
	s.stopped = true
	s.hasError = true
	s.err = err

	subscribers := s.subscribers
	s.subscribers = nil
	for _, sbr := range subscribers {
		sbr.Error(err)
	}
}

func (s *Subject) Complete() {
	if s.stopped {
		return
	}
	s.stopped = true

	subscribers := s.subscribers
	s.subscribers = nil
	for _, sbr := range subscribers {
		sbr.Complete()
	}
}

func (s *Subject) Subscribe(sbr *Subscriber) *Subscription {
	if s.hasError {
		sbr.Error(s.err)
		return sbr.Subscription()
	}
	if s.stopped {
		sbr.Complete()
		return sbr.Subscription()
	}

	s.subscribers = append(s.subscribers, sbr)
	sbr.Subscription().AddFinalizer(func() error {
		s.remove(sbr)
		return nil
	})

	return sbr.Subscription()
}

func (s *Subject) remove(sbr *Subscriber) {
	i := slices.Index(s.subscribers, sbr)
	if i >= 0 {
		s.subscribers = slices.Delete(s.subscribers, i, i+1)
	}
}

// Observable returns the subject viewed as a plain producer.
func (s *Subject) Observable() *Observable {
	return NewObservable(func(sbr *Subscriber) error {
		s.Subscribe(sbr)
		return nil
	})
}
