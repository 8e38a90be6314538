package ledger

import "github.com/avelasco/roadready/internal/store"

// Favorites and wrong answers are membership-only sets of question ids
// per collection, kept in insertion order. Adding twice and removing a
// missing member are both no-ops.

// Favorites returns the favorite question ids for a collection.
func (l *Ledger) Favorites(collection string) []int {
	return l.set(store.KeyFavorites)[collection]
}

// IsFavorite reports membership in the favorite set.
func (l *Ledger) IsFavorite(collection string, itemID int) bool {
	return contains(l.Favorites(collection), itemID)
}

// ToggleFavorite flips membership and returns the new state.
func (l *Ledger) ToggleFavorite(collection string, itemID int) bool {
	sets := l.set(store.KeyFavorites)
	if contains(sets[collection], itemID) {
		sets[collection] = remove(sets[collection], itemID)
		l.store.Set(store.KeyFavorites, sets)
		return false
	}
	sets[collection] = append(sets[collection], itemID)
	l.store.Set(store.KeyFavorites, sets)
	return true
}

// WrongAnswers returns the wrong-answer question ids for a collection.
func (l *Ledger) WrongAnswers(collection string) []int {
	return l.set(store.KeyWrongAnswers)[collection]
}

// ClearWrongAnswers empties the wrong-answer set for a collection.
// This is the only way entries leave the set.
func (l *Ledger) ClearWrongAnswers(collection string) {
	sets := l.set(store.KeyWrongAnswers)
	delete(sets, collection)
	l.store.Set(store.KeyWrongAnswers, sets)
}

func (l *Ledger) addWrong(collection string, itemID int) {
	sets := l.set(store.KeyWrongAnswers)
	if contains(sets[collection], itemID) {
		return
	}
	sets[collection] = append(sets[collection], itemID)
	l.store.Set(store.KeyWrongAnswers, sets)
}

func (l *Ledger) set(key string) map[string][]int {
	sets := make(map[string][]int)
	l.store.Get(key, &sets)
	return sets
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
