package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/utils"
	"github.com/bookvault/bookvault/models"
	"github.com/go-chi/chi/v5"
)

// bookID parses the {id} route parameter. A non-integer value cannot match
// any record, so parsing failures report ok=false and the caller answers 404.
func bookID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.CreateBook(ctx, req)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during book creation")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) getAllBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	books, err := h.services.BookService.GetAllBooks(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing books")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookID(r)
	if !ok {
		utils.WriteMessage(w, "Book not found", http.StatusNotFound)
		return
	}

	book, err := h.services.BookService.FindBookByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteMessage(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book search")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookID(r)
	if !ok {
		utils.WriteMessage(w, "Book not found", http.StatusNotFound)
		return
	}

	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.UpdateBook(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteMessage(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book update")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookID(r)
	if !ok {
		utils.WriteMessage(w, "Book not found", http.StatusNotFound)
		return
	}

	if err := h.services.BookService.DeleteBook(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteMessage(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during book deletion")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, "Book deleted", http.StatusOK)
}
