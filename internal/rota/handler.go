package rota

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Automator recebe a rota após uma transição de status bem-sucedida e
// emite os efeitos derivados (status diário da frota). A falha do automator
// nunca falha a operação principal.
type Automator interface {
	AoTransicionar(r Rota)
}

type Handler struct {
	Repo      *Repository
	Automator Automator
}

func NewHandler(repo *Repository, automator Automator) *Handler {
	return &Handler{Repo: repo, Automator: automator}
}

type criarRotaRequest struct {
	MotoristaID     *uint    `json:"motoristaId"`
	VeiculoID       *uint    `json:"veiculoId"`
	NumeroRota      string   `json:"numeroRota"`
	Origem          string   `json:"origem"`
	Destino         string   `json:"destino"`
	Data            string   `json:"data"`
	Status          Status   `json:"status"`
	TipoCarga       string   `json:"tipoCarga"`
	ReceitaEstimada float64  `json:"receitaEstimada"`
	KMInicial       float64  `json:"kmInicial"`
	KMFinal         *float64 `json:"kmFinal"`
	Descricao       string   `json:"descricao"`
}

// POST /rotas
func (h *Handler) CriarRota(w http.ResponseWriter, r *http.Request) {
	var req criarRotaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Data == "" {
		http.Error(w, "Data da viagem é obrigatória", http.StatusBadRequest)
		return
	}
	status := req.Status
	if status == "" {
		status = StatusPendente
	}
	if !status.Valido() {
		http.Error(w, "Status de rota inválido", http.StatusBadRequest)
		return
	}
	if req.KMFinal != nil && *req.KMFinal < req.KMInicial {
		http.Error(w, "KM final não pode ser menor que o inicial", http.StatusBadRequest)
		return
	}

	rota := Rota{
		MotoristaID:     req.MotoristaID,
		VeiculoID:       req.VeiculoID,
		NumeroRota:      req.NumeroRota,
		Origem:          req.Origem,
		Destino:         req.Destino,
		Data:            req.Data,
		Status:          status,
		TipoCarga:       req.TipoCarga,
		ReceitaEstimada: req.ReceitaEstimada,
		KMInicial:       req.KMInicial,
		KMFinal:         req.KMFinal,
		Descricao:       req.Descricao,
	}
	if err := h.Repo.Criar(&rota); err != nil {
		http.Error(w, "Erro ao criar rota", http.StatusInternalServerError)
		return
	}

	if h.Automator != nil {
		h.Automator.AoTransicionar(rota)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rota)
}

// GET /rotas
func (h *Handler) ListarRotas(w http.ResponseWriter, r *http.Request) {
	var (
		rotas []Rota
		err   error
	)
	inicio := r.URL.Query().Get("inicio")
	fim := r.URL.Query().Get("fim")
	if inicio != "" && fim != "" {
		rotas, err = h.Repo.ListarPorPeriodo(inicio, fim)
	} else {
		rotas, err = h.Repo.ListarTodas()
	}
	if err != nil {
		http.Error(w, "Erro ao buscar rotas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rotas)
}

// GET /rotas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de rota inválido", http.StatusBadRequest)
		return
	}
	rota, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Rota não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rota)
}

// PUT /rotas/{id}
func (h *Handler) AtualizarRota(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de rota inválido", http.StatusBadRequest)
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !patch.Status.Valido() {
		http.Error(w, "Status de rota inválido", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Rota não encontrada", http.StatusNotFound)
		return
	}
	if kmFinal := patch.KMFinal; kmFinal != nil {
		kmInicial := atual.KMInicial
		if patch.KMInicial != nil {
			kmInicial = *patch.KMInicial
		}
		if *kmFinal < kmInicial {
			http.Error(w, "KM final não pode ser menor que o inicial", http.StatusBadRequest)
			return
		}
	}

	rota, err := h.Repo.AtualizarCampos(uint(id), patch)
	if err != nil {
		http.Error(w, "Erro ao atualizar rota", http.StatusInternalServerError)
		return
	}

	if h.Automator != nil && patch.Status != nil {
		h.Automator.AoTransicionar(*rota)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rota)
}

// PATCH /rotas/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de rota inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !payload.Status.Valido() {
		http.Error(w, "Status de rota inválido", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Rota não encontrada", http.StatusNotFound)
		return
	}
	if !TransicaoValida(atual.Status, payload.Status) {
		http.Error(w, "Transição de status não permitida", http.StatusConflict)
		return
	}

	if err := h.Repo.AtualizarStatus(uint(id), payload.Status); err != nil {
		http.Error(w, "Erro ao atualizar status da rota", http.StatusInternalServerError)
		return
	}

	atual.Status = payload.Status
	if h.Automator != nil {
		h.Automator.AoTransicionar(*atual)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atual)
}
