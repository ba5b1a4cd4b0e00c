package locale

// Package locale loads the per-language message tables shown in the window.
// A Catalog is built fresh for every load and never mutated afterwards, so a
// language switch replaces the table by value instead of editing shared state.
