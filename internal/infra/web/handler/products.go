package handler

import (
	"net/http"

	"github.com/DioGolang/GoSlices/internal/application/usecase/product"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type Products struct {
	base
}

func NewProducts(d *mediator.Dispatcher, log logger.Logger) *Products {
	return &Products{base{d: d, log: log}}
}

func (h *Products) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/stock", h.UpdateStock)
	r.Put("/{id}/price", h.UpdatePrice)
	r.Post("/{id}/deactivate", h.Deactivate)
	r.Get("/{id}/availability", h.CheckAvailability)
	r.Post("/{id}/reservations", h.ReserveStock)
}

func productLocation(p product.ProductDTO) string { return "/api/products/" + p.ID }

// Create checks the creator through the Users module when created_by_user_id is given.
func (h *Products) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decode[product.CreateProductWithUserValidation](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if in.CreatedByUserID == "" {
		created(h.base, w, r, in.CreateProduct, productLocation)
		return
	}
	created(h.base, w, r, in, productLocation)
}

func (h *Products) Update(w http.ResponseWriter, r *http.Request) {
	in, err := decode[product.UpdateProduct](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "id")
	send[product.ProductDTO](h.base, w, r, in, http.StatusOK)
}

func (h *Products) UpdateStock(w http.ResponseWriter, r *http.Request) {
	in, err := decode[product.UpdateProductStock](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "id")
	send[product.ProductDTO](h.base, w, r, in, http.StatusOK)
}

func (h *Products) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	in, err := decode[product.UpdateProductPrice](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "id")
	send[product.ProductDTO](h.base, w, r, in, http.StatusOK)
}

func (h *Products) Deactivate(w http.ResponseWriter, r *http.Request) {
	send[product.ProductDTO](h.base, w, r, product.DeactivateProduct{ID: chi.URLParam(r, "id")}, http.StatusOK)
}

func (h *Products) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	find[product.ProductDTO](h.base, w, r, product.GetProduct{ID: id}, "product", id)
}

func (h *Products) List(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	in := product.ListProducts{
		AvailableOnly: q.boolean("available_only"),
		MinPrice:      q.optionalFloat("min_price"),
		MaxPrice:      q.optionalFloat("max_price"),
		Name:          q.text("name"),
		PageNumber:    q.integer("page"),
		PageSize:      q.integer("page_size"),
	}
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}
	send[pagination.Page[product.ProductDTO]](h.base, w, r, in, http.StatusOK)
}

func (h *Products) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	in := product.CheckAvailability{ProductID: chi.URLParam(r, "id"), Quantity: q.integer("quantity")}
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}
	send[product.AvailabilityDTO](h.base, w, r, in, http.StatusOK)
}

// ReserveStock only validates the reservation; see product.ReserveStock.
func (h *Products) ReserveStock(w http.ResponseWriter, r *http.Request) {
	in, err := decode[product.ReserveStock](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ProductID = chi.URLParam(r, "id")
	send[product.ReservationResult](h.base, w, r, in, http.StatusOK)
}
