package movies

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/newguy7/My-Favorite-Movies/internal/formsign"
	"github.com/newguy7/My-Favorite-Movies/internal/tmdb"
	"github.com/newguy7/My-Favorite-Movies/pkg/models"
)

type Handler struct {
	Repo   *Repo
	TMDB   *tmdb.Client
	Tokens formsign.TokenService
}

func NewHandler(repo *Repo, client *tmdb.Client, tokens formsign.TokenService) *Handler {
	return &Handler{Repo: repo, TMDB: client, Tokens: tokens}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.list)              // ranked library
	r.GET("/add", h.addForm)        // search form
	r.POST("/add", h.search)        // search external catalog
	r.GET("/add_movie", h.addMovie) // fetch details, create record
	r.GET("/update", h.editForm)    // edit form pre-fill
	r.POST("/update", h.update)     // submit rating & review
	r.GET("/delete", h.remove)      // remove record
}

// list renders the library ordered by rating descending, with ranking
// derived on the fly: 1 for the highest-rated movie, N for the lowest.
func (h *Handler) list(c *gin.Context) {
	ms, err := h.Repo.ListByRatingDesc(c.Request.Context())
	if err != nil {
		log.Printf("[movies] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	Rank(ms)

	c.JSON(http.StatusOK, gin.H{
		"count":  len(ms),
		"movies": ms,
	})
}

func (h *Handler) addForm(c *gin.Context) {
	token, err := h.Tokens.Issue()
	if err != nil {
		log.Printf("[movies] issue form token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":      "",
		"form_token": token,
	})
}

// search runs the external title search and returns the candidate list
// for disambiguation. Nothing is persisted yet; the user picks one
// candidate and follows its id into /add_movie.
func (h *Handler) search(c *gin.Context) {
	if err := h.Tokens.Verify(c.PostForm("form_token")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form token"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	results, err := h.TMDB.Search(c.Request.Context(), title)
	if err != nil {
		log.Printf("[tmdb] search %q: %v", title, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "movie metadata service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   title,
		"results": results,
	})
}

// addMovie fetches details for the chosen external id, creates the record
// with placeholder rating/review and redirects to the edit form for the
// new movie so the placeholders get overwritten right away.
func (h *Handler) addMovie(c *gin.Context) {
	externalID, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	details, err := h.TMDB.Details(c.Request.Context(), externalID)
	if err != nil {
		log.Printf("[tmdb] details %d: %v", externalID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "movie metadata service unavailable"})
		return
	}

	created, err := h.Repo.Insert(c.Request.Context(), models.Movie{
		Title:       details.Title,
		Year:        details.Year,
		Description: details.Description,
		ImgURL:      details.ImgURL,
		Rating:      PlaceholderRating,
		Ranking:     PlaceholderRanking,
		Review:      PlaceholderReview,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateTitle) {
			c.JSON(http.StatusConflict, gin.H{"error": "movie already in library"})
			return
		}
		log.Printf("[movies] insert %q: %v", details.Title, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "add failed"})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/update?id=%d", created.ID))
}

func (h *Handler) editForm(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	m, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("[movies] get %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}

	token, err := h.Tokens.Issue()
	if err != nil {
		log.Printf("[movies] issue form token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie":      m,
		"form_token": token,
	})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Tokens.Verify(c.PostForm("form_token")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form token"})
		return
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("rating")), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}
	review := strings.TrimSpace(c.PostForm("review"))
	if review == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review is required"})
		return
	}

	if err := h.Repo.UpdateRating(c.Request.Context(), id, rating, review); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("[movies] update %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("[movies] delete %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
