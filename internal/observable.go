package internal

import "fmt"

// Observable wraps the producer function that, given a subscriber, starts
// pushing notifications into it.
type Observable struct {
	onSubscribe func(*Subscriber) error
}

func NewObservable(onSubscribe func(*Subscriber) error) *Observable {
	return &Observable{onSubscribe: onSubscribe}
}

// Subscribe starts the producer against sbr and returns sbr's subscription.
// A wiring failure, whether returned or panicked while the producer sets
// up, is delivered to sbr as a terminal error instead of escaping.
func (o *Observable) Subscribe(sbr *Subscriber) *Subscription {
	if err := o.wire(sbr); err != nil {
		sbr.Error(err)
	}

	return sbr.Subscription()
}

func (o *Observable) wire(sbr *Subscriber) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("obs: subscribe panicked: %v", r)
			}
		}
	}()

	return o.onSubscribe(sbr)
}

// Transform wires an operator: it subscribes to source with a derived
// subscriber whose hooks call into outer as appropriate.
type Transform func(source *Observable, outer *Subscriber) error

// Operate is the single mechanism every operator is built from. The
// returned constructor produces a new observable that, when subscribed,
// runs transform with the outer subscriber; the operator subscriber created
// inside (see NewOperatorSubscriber) carries the disposal wiring, closed
// tracking, and terminal suppression.
func Operate(transform Transform) func(*Observable) *Observable {
	return func(source *Observable) *Observable {
		return NewObservable(func(outer *Subscriber) error {
			return transform(source, outer)
		})
	}
}
