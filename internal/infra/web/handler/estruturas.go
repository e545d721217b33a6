package handler

import (
	"net/http"

	"github.com/DioGolang/GoSlices/internal/application/usecase/estrutura"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type Estruturas struct {
	base
}

func NewEstruturas(d *mediator.Dispatcher, log logger.Logger) *Estruturas {
	return &Estruturas{base{d: d, log: log}}
}

func (h *Estruturas) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *Estruturas) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decode[estrutura.CreateEstrutura](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	created(h.base, w, r, in, func(e estrutura.EstruturaDTO) string { return "/api/estruturas/" + e.ID })
}

func (h *Estruturas) Update(w http.ResponseWriter, r *http.Request) {
	in, err := decode[estrutura.UpdateEstrutura](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "id")
	send[estrutura.EstruturaDTO](h.base, w, r, in, http.StatusOK)
}

func (h *Estruturas) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := mediator.Send[bool](r.Context(), h.d, estrutura.DeleteEstrutura{ID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !deleted {
		h.writeError(w, r, apperr.NotFound("estrutura", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Estruturas) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	find[estrutura.EstruturaDTO](h.base, w, r, estrutura.GetEstrutura{ID: id}, "estrutura", id)
}

func (h *Estruturas) List(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	in := estrutura.ListEstruturas{
		Status:     q.optionalInt("status"),
		PageNumber: q.integer("page"),
		PageSize:   q.integer("page_size"),
	}
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}
	send[pagination.Page[estrutura.EstruturaDTO]](h.base, w, r, in, http.StatusOK)
}
