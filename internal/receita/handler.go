package receita

import (
	"encoding/json"
	"net/http"

	"github.com/rotafacil/api-frota/internal/despesa"
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/veiculo"

	"gorm.io/gorm"
)

// Handler expõe o resumo gerencial do período (contagens por status e
// totais financeiros).
type Handler struct {
	DB         *gorm.DB
	Rotas      *rota.Repository
	Veiculos   *veiculo.Repository
	Motoristas motorista.Repository
	Despesas   *despesa.Repository
}

func NewHandler(db *gorm.DB, rotas *rota.Repository, veiculos *veiculo.Repository, despesas *despesa.Repository) *Handler {
	return &Handler{
		DB:         db,
		Rotas:      rotas,
		Veiculos:   veiculos,
		Motoristas: motorista.NewRepository(),
		Despesas:   despesas,
	}
}

type resumoPainel struct {
	RotasAtivas      int     `json:"rotasAtivas"`
	RotasFinalizadas int     `json:"rotasFinalizadas"`
	RotasPernoite    int     `json:"rotasPernoite"`
	Problemas        int     `json:"problemas"`
	ReceitaTotal     float64 `json:"receitaTotal"`
	DespesasTotal    float64 `json:"despesasTotal"`
	LucroLiquido     float64 `json:"lucroLiquido"`
}

// GET /painel/resumo?inicio=YYYY-MM-DD&fim=YYYY-MM-DD
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	inicio := r.URL.Query().Get("inicio")
	fim := r.URL.Query().Get("fim")

	var (
		rotas []rota.Rota
		err   error
	)
	if inicio != "" && fim != "" {
		rotas, err = h.Rotas.ListarPorPeriodo(inicio, fim)
	} else {
		rotas, err = h.Rotas.ListarTodas()
	}
	if err != nil {
		http.Error(w, "Erro ao buscar rotas", http.StatusInternalServerError)
		return
	}

	veiculos, err := h.Veiculos.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar veículos", http.StatusInternalServerError)
		return
	}
	motoristas, err := h.Motoristas.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar motoristas", http.StatusInternalServerError)
		return
	}

	ids := make([]uint, 0, len(rotas))
	for _, rt := range rotas {
		ids = append(ids, rt.ID)
	}
	despesas, err := h.Despesas.ListarPorRotas(ids)
	if err != nil {
		http.Error(w, "Erro ao buscar despesas", http.StatusInternalServerError)
		return
	}

	var resumo resumoPainel
	for _, rt := range rotas {
		switch rt.Status {
		case rota.StatusEmAndamento:
			resumo.RotasAtivas++
		case rota.StatusFinalizada:
			resumo.RotasFinalizadas++
		case rota.StatusPernoite:
			resumo.RotasPernoite++
		case rota.StatusProblema:
			resumo.Problemas++
		}
		resumo.ReceitaTotal += CalcularRota(rt, veiculos, motoristas)
	}
	for _, d := range despesas {
		resumo.DespesasTotal += d.Valor
	}
	resumo.LucroLiquido = resumo.ReceitaTotal - resumo.DespesasTotal

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
