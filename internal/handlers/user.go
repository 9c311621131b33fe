package handlers

import (
	"errors"
	"net/http"

	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/render"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/go-chi/chi/v5"
)

const msgUserNotFound = "User not found"

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Base
}

// ==========================
// List Users
// ==========================
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q, ok := h.querier(w, r)
	if !ok {
		return
	}

	users, err := repo.NewUserRepo(q).List(r.Context())
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, "users_list.html", render.Page{Users: users})
}

// ==========================
// Create User
// ==========================
func (h *UserHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "user_form.html", render.Page{})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.BadForm(w, r, err)
		return
	}
	input, errs := forms.ParseNewUser(r.PostForm)
	if errs != nil {
		h.page(w, r, http.StatusUnprocessableEntity, "user_form.html", render.Page{
			Values: userValues(r),
			Errors: errs,
		})
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	if _, err := repo.NewUserRepo(q).Create(r.Context(), input.Username, input.Email, input.Password); err != nil {
		h.ServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusFound)
}

// ==========================
// Edit User
// ==========================
func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, errs := forms.ParseID(chi.URLParam(r, "id"))
	if errs != nil {
		h.InvalidID(w, r, errs, msgUserNotFound)
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	user, err := repo.NewUserRepo(q).GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r, msgUserNotFound)
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, "edit_user_form.html", render.Page{
		ID:     user.ID,
		Values: map[string]string{"username": user.Username, "email": user.Email},
	})
}

// Update applies the submitted fields. A blank password leaves the stored one untouched.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, errs := forms.ParseID(chi.URLParam(r, "id"))
	if errs != nil {
		h.InvalidID(w, r, errs, msgUserNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.BadForm(w, r, err)
		return
	}
	input, errs := forms.ParseEditUser(r.PostForm)
	if errs != nil {
		h.page(w, r, http.StatusUnprocessableEntity, "edit_user_form.html", render.Page{
			ID:     id,
			Values: userValues(r),
			Errors: errs,
		})
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	_, err := repo.NewUserRepo(q).Update(r.Context(), id, input.Username, input.Email, input.Password)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r, msgUserNotFound)
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// ==========================
// Delete User
// ==========================

// Delete removes the user on a plain GET, without confirmation, and returns to the list.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, errs := forms.ParseID(chi.URLParam(r, "id"))
	if errs != nil {
		h.InvalidID(w, r, errs, msgUserNotFound)
		return
	}

	q, ok := h.querier(w, r)
	if !ok {
		return
	}
	err := repo.NewUserRepo(q).Delete(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.NotFound(w, r, msgUserNotFound)
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusFound)
}

// userValues echoes the submitted fields back into the form. The password is never echoed.
func userValues(r *http.Request) map[string]string {
	return map[string]string{
		"username": r.PostForm.Get("username"),
		"email":    r.PostForm.Get("email"),
	}
}
