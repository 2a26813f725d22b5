package movies

import (
	"testing"

	"github.com/newguy7/My-Favorite-Movies/pkg/models"
)

func TestRank(t *testing.T) {
	ms := []models.Movie{
		{Title: "A", Rating: 9.0, Ranking: PlaceholderRanking},
		{Title: "B", Rating: 7.5, Ranking: PlaceholderRanking},
		{Title: "C", Rating: 3.1, Ranking: PlaceholderRanking},
	}

	Rank(ms)

	for i, m := range ms {
		if m.Ranking != i+1 {
			t.Errorf("ms[%d].Ranking = %d, want %d", i, m.Ranking, i+1)
		}
	}
}

func TestRank_Empty(t *testing.T) {
	Rank(nil)
	Rank([]models.Movie{})
}
