package recipe

import "context"

type contextKey struct{}

// WithStore scopes s to ctx for consumers that receive a context rather than the store
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store scoped by WithStore. Calling it outside that
// scope is a programming error and panics.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		panic("recipe: FromContext called without a store in scope; wrap the context with recipe.WithStore")
	}
	return s
}
