package download

// Package download implements the selection policy that turns the chosen
// formats into one stream, and the transfer of that stream into the directory
// picked by the user. Link resolution and the transfer itself are delegated to
// a media.Fetcher.
