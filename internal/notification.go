package internal

type Kind int

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindComplete:
		return "complete"
	}
	return "unknown"
}

// Notification is the single message shape every producer pushes to a
// destination: a value, a terminal error, or a terminal completion.
type Notification struct {
	Kind  Kind
	Value any
	Err   error
}

func NextNotification(v any) Notification {
	return Notification{Kind: KindNext, Value: v}
}

func ErrorNotification(err error) Notification {
	return Notification{Kind: KindError, Err: err}
}

func CompleteNotification() Notification {
	return Notification{Kind: KindComplete}
}

// Destination is the only way results leave the core.
type Destination func(Notification)
