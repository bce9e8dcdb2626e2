package statusdiario

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

type Handler struct {
	Repo     *Repository
	Rotas    *rota.Repository
	Veiculos *veiculo.Repository
}

func NewHandler(repo *Repository, rotas *rota.Repository, veiculos *veiculo.Repository) *Handler {
	return &Handler{Repo: repo, Rotas: rotas, Veiculos: veiculos}
}

// GET /frota/status?mes=YYYY-MM
func (h *Handler) ListarPorMes(w http.ResponseWriter, r *http.Request) {
	anoMes := r.URL.Query().Get("mes")
	if len(anoMes) != 7 {
		http.Error(w, "Parâmetro mes inválido (use YYYY-MM)", http.StatusBadRequest)
		return
	}
	ss, err := h.Repo.ListarPorMes(anoMes)
	if err != nil {
		http.Error(w, "Erro ao buscar status diários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ss)
}

// PUT /frota/status — edição manual do quadro, sobrescreve a célula.
func (h *Handler) UpsertManual(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		VeiculoID   uint   `json:"veiculoId"`
		Data        string `json:"data"`
		Status      Codigo `json:"status"`
		StatusTexto string `json:"statusTexto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.VeiculoID == 0 || len(payload.Data) != 10 {
		http.Error(w, "Veículo e data (YYYY-MM-DD) são obrigatórios", http.StatusBadRequest)
		return
	}
	if !payload.Status.Valido() {
		http.Error(w, "Código de status inválido", http.StatusBadRequest)
		return
	}

	texto := payload.StatusTexto
	if texto == "" {
		texto = payload.Status.Rotulo()
	}
	s := StatusDiario{
		VeiculoID:   payload.VeiculoID,
		Data:        payload.Data,
		Status:      payload.Status,
		StatusTexto: texto,
	}
	if err := h.Repo.Upsert(&s); err != nil {
		http.Error(w, "Erro ao salvar status", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

type celulaCalendario struct {
	Data        string `json:"data"`
	Status      Codigo `json:"status"`
	StatusTexto string `json:"statusTexto"`
}

type linhaCalendario struct {
	VeiculoID uint               `json:"veiculoId"`
	Placa     string             `json:"placa"`
	Modelo    string             `json:"modelo"`
	Dias      []celulaCalendario `json:"dias"`
}

// GET /frota/calendario?mes=YYYY-MM
// Deriva o quadro mensal da frota: registro manual vence, senão o status
// vem da rota ativa do dia.
func (h *Handler) Calendario(w http.ResponseWriter, r *http.Request) {
	anoMes := r.URL.Query().Get("mes")
	if len(anoMes) != 7 {
		http.Error(w, "Parâmetro mes inválido (use YYYY-MM)", http.StatusBadRequest)
		return
	}

	veiculos, err := h.Veiculos.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar veículos", http.StatusInternalServerError)
		return
	}
	manuais, err := h.Repo.ListarPorMes(anoMes)
	if err != nil {
		http.Error(w, "Erro ao buscar status diários", http.StatusInternalServerError)
		return
	}
	rotas, err := h.Rotas.ListarPorPeriodo(anoMes+"-01", anoMes+"-31")
	if err != nil {
		http.Error(w, "Erro ao buscar rotas", http.StatusInternalServerError)
		return
	}

	linhas := make([]linhaCalendario, 0, len(veiculos))
	for _, v := range veiculos {
		linha := linhaCalendario{VeiculoID: v.ID, Placa: v.Placa, Modelo: v.Modelo}
		for dia := 1; dia <= 31; dia++ {
			data := fmt.Sprintf("%s-%02d", anoMes, dia)
			if c, ok := StatusNoDia(v.ID, data, manuais, rotas); ok {
				linha.Dias = append(linha.Dias, celulaCalendario{
					Data:        data,
					Status:      c,
					StatusTexto: c.Rotulo(),
				})
			}
		}
		linhas = append(linhas, linha)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(linhas)
}
