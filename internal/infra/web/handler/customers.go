package handler

import (
	"net/http"

	"github.com/DioGolang/GoSlices/internal/application/usecase/customer"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type Customers struct {
	base
}

func NewCustomers(d *mediator.Dispatcher, log logger.Logger) *Customers {
	return &Customers{base{d: d, log: log}}
}

func (h *Customers) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/deactivate", h.Deactivate)
	r.Post("/{id}/activate", h.Activate)
}

func (h *Customers) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decode[customer.CreateCustomer](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	created(h.base, w, r, in, func(c customer.CustomerDTO) string { return "/api/customers/" + c.ID })
}

func (h *Customers) Update(w http.ResponseWriter, r *http.Request) {
	in, err := decode[customer.UpdateCustomer](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "id")
	send[customer.CustomerDTO](h.base, w, r, in, http.StatusOK)
}

func (h *Customers) Deactivate(w http.ResponseWriter, r *http.Request) {
	send[customer.CustomerDTO](h.base, w, r, customer.DeactivateCustomer{ID: chi.URLParam(r, "id")}, http.StatusOK)
}

func (h *Customers) Activate(w http.ResponseWriter, r *http.Request) {
	send[customer.CustomerDTO](h.base, w, r, customer.ActivateCustomer{ID: chi.URLParam(r, "id")}, http.StatusOK)
}

func (h *Customers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	find[customer.CustomerDTO](h.base, w, r, customer.GetCustomer{ID: id}, "customer", id)
}

func (h *Customers) List(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	in := customer.ListCustomers{
		ActiveOnly: q.boolean("active_only"),
		PageNumber: q.integer("page"),
		PageSize:   q.integer("page_size"),
	}
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}
	send[pagination.Page[customer.CustomerDTO]](h.base, w, r, in, http.StatusOK)
}
