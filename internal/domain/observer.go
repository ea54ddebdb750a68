package domain

// Snapshot is a read-only copy of the recipe state handed to observers
type Snapshot struct {
	Recipes []Recipe
	Liked   LikedSet
	Ready   bool
}

// ChangeObserver receives a snapshot after every state change
type ChangeObserver interface {
	OnChange(snap Snapshot)
}

// ObserverFunc adapts a function to ChangeObserver
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnChange(snap Snapshot) { f(snap) }

// NoOpObserver discards updates (for testing/batch operations).
type NoOpObserver struct{}

func (NoOpObserver) OnChange(Snapshot) {}
