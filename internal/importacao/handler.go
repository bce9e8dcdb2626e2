package importacao

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

type Handler struct {
	DB         *gorm.DB
	Matcher    *Matcher
	Rotas      *rota.Repository
	Veiculos   *veiculo.Repository
	Motoristas motorista.Repository
}

func NewHandler(db *gorm.DB, m *Matcher, rotas *rota.Repository, veiculos *veiculo.Repository, motoristas motorista.Repository) *Handler {
	return &Handler{DB: db, Matcher: m, Rotas: rotas, Veiculos: veiculos, Motoristas: motoristas}
}

// ImportarRotas recebe a planilha de rotas em lote (multipart, campo
// "arquivo") e devolve o resumo da conciliação.
func (h *Handler) ImportarRotas(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Arquivo inválido", http.StatusBadRequest)
		return
	}
	arquivo, _, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "Envie a planilha no campo 'arquivo'", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	linhas, err := LerPlanilhaRotas(arquivo)
	if err != nil {
		http.Error(w, "Não foi possível ler a planilha: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(linhas) == 0 {
		http.Error(w, "A planilha não contém linhas com placa e número de viagem", http.StatusBadRequest)
		return
	}

	veiculos, err := h.Veiculos.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao carregar veículos", http.StatusInternalServerError)
		return
	}
	motoristas, err := h.Motoristas.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar motoristas", http.StatusInternalServerError)
		return
	}
	existentes, err := h.Rotas.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao carregar rotas", http.StatusInternalServerError)
		return
	}

	resultado := h.Matcher.ImportarRotas(linhas, veiculos, motoristas, existentes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
