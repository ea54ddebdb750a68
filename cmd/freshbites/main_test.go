package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mmcdole/freshbites/internal/domain"
	"github.com/mmcdole/freshbites/internal/recipe"
	"github.com/mmcdole/freshbites/internal/search"
	"github.com/mmcdole/freshbites/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintList(t *testing.T) {
	storage, err := store.Open("", store.Options{})
	require.NoError(t, err)
	require.NoError(t, storage.SetItem(domain.KeyLikedRecipes, `["3"]`))

	recipes := recipe.New(recipe.Options{
		Storage: storage,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	var out bytes.Buffer
	require.NoError(t, printList(recipe.WithStore(context.Background(), recipes), &out, "kimchi", search.All))

	text := out.String()
	assert.Contains(t, text, "TITLE")
	assert.Contains(t, text, "♥")
	assert.Contains(t, text, "Kimchi Jjigae")
	assert.NotContains(t, text, "Bulgogi")
}

func TestPrintListByCategory(t *testing.T) {
	storage, err := store.Open("", store.Options{})
	require.NoError(t, err)
	recipes := recipe.New(recipe.Options{
		Storage: storage,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	var out bytes.Buffer
	require.NoError(t, printList(recipe.WithStore(context.Background(), recipes), &out, "", search.CategoryFilter(domain.CategoryBreakfast)))
	assert.Contains(t, out.String(), "Gyeran-mari")
	assert.NotContains(t, out.String(), "Kimchi Jjigae")
}

func TestPrintListWithoutStoreInScope(t *testing.T) {
	var out bytes.Buffer
	assert.PanicsWithValue(t,
		"recipe: FromContext called without a store in scope; wrap the context with recipe.WithStore",
		func() { _ = printList(context.Background(), &out, "", search.All) })
	assert.Empty(t, out.String())
}
