package admin

// Console wires the core components together around one store and notifier.
type Console struct {
	Collection *CollectionStore
	Lifecycle  *Lifecycle
	Rates      *RateRefreshCoordinator
	Draft      *DraftController
}

// NewConsole builds a Console. Mutations and rate refreshes reload Collection.
func NewConsole(store CurrencyStore, notifier Notifier, opts ...Option) *Console {
	collection := NewCollectionStore(store, notifier, opts...)
	lifecycle := NewLifecycle(store, notifier, collection, opts...)
	return &Console{
		Collection: collection,
		Lifecycle:  lifecycle,
		Rates:      NewRateRefreshCoordinator(store, notifier, collection, opts...),
		Draft:      NewDraftController(lifecycle, opts...),
	}
}
