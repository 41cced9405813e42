package obs

import "github.com/AnatoleLucet/obs/internal"

// Subject is a producer that multicasts every pushed notification to its
// current subscribers. After a terminal push it replays the terminal to
// late subscribers and ignores further pushes.
type Subject[T any] struct {
	subject *internal.Subject
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{internal.NewSubject()}
}

func (s *Subject[T]) Next(v T) {
	s.subject.Next(v)
}

func (s *Subject[T]) Error(err error) {
	s.subject.Error(err)
}

func (s *Subject[T]) Complete() {
	s.subject.Complete()
}

// Observable returns the subject viewed as a plain producer.
func (s *Subject[T]) Observable() *Observable[T] {
	return &Observable[T]{s.subject.Observable()}
}

// Subscribe attaches dest to the subject's live notifications.
func (s *Subject[T]) Subscribe(dest func(Notification[T])) *Subscription {
	return s.Observable().Subscribe(dest)
}
