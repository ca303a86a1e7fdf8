package models

// Favorites maps a user ID to the ordered list of song IDs that user has
// favorited. A user exists exactly when it has a key here; there is no
// separate user record.
type Favorites map[string][]string

// UserIDs returns every user ID present in the mapping.
func (f Favorites) UserIDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	return ids
}

// TotalEntries counts favorite entries across all users.
func (f Favorites) TotalEntries() int {
	total := 0
	for _, songs := range f {
		total += len(songs)
	}
	return total
}
