package sobra

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rotafacil/api-frota/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// RegistrarSobras grava as caixas devolvidas de uma rota em lote.
func (h *Handler) RegistrarSobras(w http.ResponseWriter, r *http.Request) {
	rotaID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var corpo []SobraCarga
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil || len(corpo) == 0 {
		http.Error(w, "Requisição inválida", http.StatusBadRequest)
		return
	}

	usuarioID, _ := r.Context().Value(auth.CtxUserID).(uint)

	lote := make([]*SobraCarga, 0, len(corpo))
	for i := range corpo {
		corpo[i].RotaID = uint(rotaID)
		corpo[i].MotoristaID = usuarioID
		lote = append(lote, &corpo[i])
	}
	if err := h.Repo.CriarLote(lote); err != nil {
		http.Error(w, "Erro ao registrar sobras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(corpo)
}

func (h *Handler) ListarPorRota(w http.ResponseWriter, r *http.Request) {
	rotaID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	ss, err := h.Repo.ListarPorRota(uint(rotaID))
	if err != nil {
		http.Error(w, "Erro ao listar sobras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ss)
}
