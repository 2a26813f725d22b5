package movies

import "github.com/newguy7/My-Favorite-Movies/pkg/models"

// Rank assigns ranking 1..N in place over a slice already sorted by
// rating descending. The result is purely derived for rendering; nothing
// is written back to the store.
func Rank(ms []models.Movie) {
	for i := range ms {
		ms[i].Ranking = i + 1
	}
}
