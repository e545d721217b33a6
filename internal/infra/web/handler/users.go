package handler

import (
	"net/http"

	"github.com/DioGolang/GoSlices/internal/application/usecase/user"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type Users struct {
	base
}

func NewUsers(d *mediator.Dispatcher, log logger.Logger) *Users {
	return &Users{base{d: d, log: log}}
}

func (h *Users) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/by-email", h.GetByEmail)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/deactivate", h.Deactivate)
	r.Post("/{id}/activate", h.Activate)
	r.Get("/{id}/validation", h.Validate)
}

func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decode[user.CreateUser](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	created(h.base, w, r, in, func(u user.UserDTO) string { return "/api/users/" + u.ID })
}

func (h *Users) Update(w http.ResponseWriter, r *http.Request) {
	in, err := decode[user.UpdateUser](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "id")
	send[user.UserDTO](h.base, w, r, in, http.StatusOK)
}

func (h *Users) Deactivate(w http.ResponseWriter, r *http.Request) {
	send[user.UserDTO](h.base, w, r, user.DeactivateUser{ID: chi.URLParam(r, "id")}, http.StatusOK)
}

func (h *Users) Activate(w http.ResponseWriter, r *http.Request) {
	send[user.UserDTO](h.base, w, r, user.ActivateUser{ID: chi.URLParam(r, "id")}, http.StatusOK)
}

func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	find[user.UserDTO](h.base, w, r, user.GetUser{ID: id}, "user", id)
}

func (h *Users) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	find[user.UserDTO](h.base, w, r, user.GetUserByEmail{Email: email}, "user", email)
}

func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	in := user.ListUsers{
		ActiveOnly: q.boolean("active_only"),
		PageNumber: q.integer("page"),
		PageSize:   q.integer("page_size"),
	}
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}
	send[pagination.Page[user.UserDTO]](h.base, w, r, in, http.StatusOK)
}

func (h *Users) Validate(w http.ResponseWriter, r *http.Request) {
	send[user.ValidationResult](h.base, w, r, user.ValidateUser{UserID: chi.URLParam(r, "id")}, http.StatusOK)
}
