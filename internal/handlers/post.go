package handlers

import (
	"errors"
	"net/http"

	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/render"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/go-chi/chi/v5"
)

const msgPostNotFound = "Post not found"

type PostHandler struct {
	Base
}

//
// ==========================
// List Posts
// ==========================
//

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q, ok := h.querier(w, r)
	if !ok {
		return
	}

	posts, err := repo.NewPostRepo(q).List(r.Context())
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, "posts_list.html", render.Page{Posts: posts})
}

//
// ==========================
// Create Post
// ==========================
//

func (h *PostHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "post_form.html", render.Page{})
}

// Create stores the post as submitted; user_id is not checked against existing users.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.BadForm(w, r, err)
		return
	}
	input, errs := forms.ParseNewPost(r.PostForm)
	if errs != nil {
		h.page(w, r, http.StatusUnprocessableEntity, "post_form.html", render.Page{
			Values: map[string]string{
				"title":   r.PostForm.Get("title"),
				"content": r.PostForm.Get("content"),
				"user_id": r.PostForm.Get("user_id"),
			},
			Errors: errs,
		})
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	if _, err := repo.NewPostRepo(q).Create(r.Context(), input.Title, input.Content, input.UserID); err != nil {
		h.ServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/posts", http.StatusFound)
}

//
// ==========================
// Edit Post
// ==========================
//

func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, errs := forms.ParseID(chi.URLParam(r, "id"))
	if errs != nil {
		h.InvalidID(w, r, errs, msgPostNotFound)
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	post, err := repo.NewPostRepo(q).GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r, msgPostNotFound)
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, "edit_post_form.html", render.Page{
		ID:     post.ID,
		Values: map[string]string{"title": post.Title, "content": post.Content},
	})
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, errs := forms.ParseID(chi.URLParam(r, "id"))
	if errs != nil {
		h.InvalidID(w, r, errs, msgPostNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.BadForm(w, r, err)
		return
	}
	input, errs := forms.ParseEditPost(r.PostForm)
	if errs != nil {
		h.page(w, r, http.StatusUnprocessableEntity, "edit_post_form.html", render.Page{
			ID: id,
			Values: map[string]string{
				"title":   r.PostForm.Get("title"),
				"content": r.PostForm.Get("content"),
			},
			Errors: errs,
		})
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	_, err := repo.NewPostRepo(q).Update(r.Context(), id, input.Title, input.Content)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r, msgPostNotFound)
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

//
// ==========================
// Delete Post
// ==========================
//

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, errs := forms.ParseID(chi.URLParam(r, "id"))
	if errs != nil {
		h.InvalidID(w, r, errs, msgPostNotFound)
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	err := repo.NewPostRepo(q).Delete(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r, msgPostNotFound)
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/posts", http.StatusFound)
}
