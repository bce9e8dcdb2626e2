package despesa

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rotafacil/api-frota/internal/auth"
	"github.com/rotafacil/api-frota/internal/rota"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo  *Repository
	Rotas *rota.Repository
}

func NewHandler(repo *Repository, rotas *rota.Repository) *Handler {
	return &Handler{Repo: repo, Rotas: rotas}
}

// POST /despesas
func (h *Handler) CriarDespesa(w http.ResponseWriter, r *http.Request) {
	var d Despesa
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !d.Tipo.Valido() {
		http.Error(w, "Tipo de despesa inválido", http.StatusBadRequest)
		return
	}
	if d.RotaID == 0 {
		http.Error(w, "Rota é obrigatória", http.StatusBadRequest)
		return
	}
	if d.Tipo == TipoPernoiteAdmin {
		if isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool); !isAdmin {
			http.Error(w, "Pernoite (Admin) só pode ser lançado por administradores", http.StatusForbidden)
			return
		}
	}

	if err := h.Repo.Criar(&d); err != nil {
		http.Error(w, "Erro ao criar despesa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /despesas
func (h *Handler) ListarDespesas(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar despesas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ds)
}

// GET /rotas/{id}/despesas
func (h *Handler) ListarPorRota(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de rota inválido", http.StatusBadRequest)
		return
	}
	ds, err := h.Repo.ListarPorRota(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar despesas da rota", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ds)
}

// GET /despesas/pernoites-pendentes
// Rotas em status de Pernoite sem lançamento administrativo de pernoite.
func (h *Handler) PernoitesPendentes(w http.ResponseWriter, r *http.Request) {
	rotas, err := h.Rotas.ListarPorStatus(rota.StatusPernoite)
	if err != nil {
		http.Error(w, "Erro ao buscar rotas em pernoite", http.StatusInternalServerError)
		return
	}

	pendentes := make([]rota.Rota, 0)
	for _, rt := range rotas {
		n, err := h.Repo.ContarPernoitesAdmin(rt.ID)
		if err != nil {
			http.Error(w, "Erro ao verificar lançamentos de pernoite", http.StatusInternalServerError)
			return
		}
		if n == 0 {
			pendentes = append(pendentes, rt)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pendentes)
}
