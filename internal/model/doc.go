package model

// Package model defines the values the window works with: the format choices
// offered by the two selectors, the per-click download request, and the
// status of that request.
