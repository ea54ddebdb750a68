package domain

// Keys under which state is persisted in LocalStorage
const (
	KeyLikedRecipes = "likedRecipes"
	KeyRecipes      = "recipes"
	KeyDarkMode     = "darkMode"
)

// LocalStorage is durable string-keyed, string-valued storage scoped to one user.
// GetItem reports ok=false for a missing key; a read error is treated the same way
// by callers, since nothing persisted can be trusted in that case.
type LocalStorage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Close() error
}
