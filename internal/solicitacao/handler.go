package solicitacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/rotafacil/api-frota/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// CriarSolicitacao registra o pedido em nome do motorista autenticado.
func (h *Handler) CriarSolicitacao(w http.ResponseWriter, r *http.Request) {
	var s SolicitacaoPagamento
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "Requisição inválida", http.StatusBadRequest)
		return
	}
	if !s.Tipo.Valido() {
		http.Error(w, "Tipo de solicitação inválido", http.StatusBadRequest)
		return
	}
	if s.Valor <= 0 {
		http.Error(w, "Valor deve ser maior que zero", http.StatusBadRequest)
		return
	}

	usuarioID, ok := r.Context().Value(auth.CtxUserID).(uint)
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	s.MotoristaID = usuarioID
	s.Status = StatusAguardando

	if err := h.Repo.Criar(&s); err != nil {
		http.Error(w, "Erro ao criar solicitação", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// ListarSolicitacoes devolve todas para administradores e só as próprias
// para motoristas.
func (h *Handler) ListarSolicitacoes(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	var (
		ss  []SolicitacaoPagamento
		err error
	)
	if isAdmin {
		ss, err = h.Repo.ListarTodas()
	} else {
		usuarioID, ok := r.Context().Value(auth.CtxUserID).(uint)
		if !ok {
			http.Error(w, "Não autenticado", http.StatusUnauthorized)
			return
		}
		ss, err = h.Repo.ListarPorMotorista(usuarioID)
	}
	if err != nil {
		http.Error(w, "Erro ao listar solicitações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ss)
}

// AtualizarStatus muda a triagem da solicitação (rota restrita a admin).
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var corpo struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil || !corpo.Status.Valido() {
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Solicitação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar solicitação", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.AtualizarStatus(uint(id), corpo.Status); err != nil {
		http.Error(w, "Erro ao atualizar solicitação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
