package internal

// ExhaustAll flattens a stream whose values are themselves observable-like,
// ignoring new inner values while one inner sequence is active. normalize
// converts each outer value into a producer and is supplied by the caller.
//
// The output completes once the source has completed and no inner sequence
// is running. An inner error ends the whole chain.
func ExhaustAll(normalize func(any) (*Observable, error)) func(*Observable) *Observable {
	return Operate(func(source *Observable, outer *Subscriber) error {
		var inner *Subscription
		outerComplete := false

		src := NewOperatorSubscriber(outer, Hooks{
			OnNext: func(v any) {
				if inner != nil {
					// exhaust policy: an inner is live, drop the value
					return
				}

				innerObs, err := normalize(v)
				if err != nil {
					outer.Error(err)
					return
				}

				innerSbr := NewOperatorSubscriber(outer, Hooks{
					OnComplete: func() {
						inner = nil
						if outerComplete {
							outer.Complete()
						}
					},
				})

				// set before subscribing: the inner may complete
				// synchronously inside Subscribe
				inner = innerSbr.Subscription()
				innerObs.Subscribe(innerSbr)

				if inner != nil && inner.Closed() {
					inner = nil
				}
			},
			OnComplete: func() {
				outerComplete = true
				if inner == nil {
					outer.Complete()
				}
			},
		})

		source.Subscribe(src)
		return nil
	})
}
