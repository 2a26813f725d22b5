package models

// Movie is the single persisted entity: one row per movie in the
// personal library. Ranking is derived from rating order when the
// full list is rendered; every other field is set by the add/edit flows.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Ranking     int     `json:"ranking"`
	Review      string  `json:"review"`
	ImgURL      string  `json:"img_url"`
}
