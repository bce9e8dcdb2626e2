package veiculo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /veiculos
func (h *Handler) CriarVeiculo(w http.ResponseWriter, r *http.Request) {
	var v Veiculo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if v.Placa == "" {
		http.Error(w, "Placa é obrigatória", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "Erro ao criar veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// GET /veiculos
func (h *Handler) ListarVeiculos(w http.ResponseWriter, r *http.Request) {
	vs, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar veículos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vs)
}

// GET /veiculos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de veículo inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// PATCH /veiculos/{id}/tarifas
func (h *Handler) AtualizarTarifas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de veículo inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		ValorDiaria float64 `json:"valorDiaria"`
		ValorKM     float64 `json:"valorKm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.AtualizarTarifas(uint(id), payload.ValorDiaria, payload.ValorKM); err != nil {
		http.Error(w, "Erro ao atualizar tarifas", http.StatusInternalServerError)
		return
	}

	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Veículo não encontrado após atualização", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// POST /veiculos/frota-oficial
// Insere ou atualiza a frota cadastrada em lote, casando por placa.
func (h *Handler) CarregarFrotaOficial(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Veiculos []Veiculo `json:"veiculos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Repo.UpsertPorPlaca(body.Veiculos); err != nil {
		http.Error(w, "Erro ao carregar frota", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(body.Veiculos)
}
