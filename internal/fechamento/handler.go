package fechamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/rotafacil/api-frota/internal/importacao"
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/notificacao"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

type Handler struct {
	DB         *gorm.DB
	Repo       *Repository
	Rotas      *rota.Repository
	Veiculos   *veiculo.Repository
	Motoristas motorista.Repository
}

func NewHandler(db *gorm.DB, repo *Repository, rotas *rota.Repository, veiculos *veiculo.Repository, motoristas motorista.Repository) *Handler {
	return &Handler{DB: db, Repo: repo, Rotas: rotas, Veiculos: veiculos, Motoristas: motoristas}
}

// Previa recebe a planilha de fechamento (multipart, campo "arquivo") e
// devolve as linhas conciliadas com os totais, sem gravar nada. As linhas
// podem ser ajustadas no cliente e reenviadas em CriarFechamento.
func (h *Handler) Previa(w http.ResponseWriter, r *http.Request) {
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

	dados, err := importacao.LerPlanilhaFechamento(arquivo)
	if err != nil {
		http.Error(w, "Não foi possível ler a planilha: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(dados) == 0 {
		http.Error(w, "A planilha não contém linhas com identificador de rota", http.StatusBadRequest)
		return
	}

	rotas, err := h.Rotas.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao carregar rotas", http.StatusInternalServerError)
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

	previa := Fechamento{
		Data:   time.Now().Format("2006-01-02"),
		Linhas: MontarLinhas(dados, rotas, veiculos, motoristas),
	}
	Agregar(&previa)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(previa)
}

// CriarFechamento grava um fechamento a partir das linhas revisadas da
// prévia. Se qualquer rota já constar em fechamento anterior, nada é
// gravado: a resposta é 409 com a lista de rotas em conflito e um alerta é
// disparado para o webhook da equipe.
func (h *Handler) CriarFechamento(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		Data          string  `json:"data"`
		DataPagamento string  `json:"dataPagamento"`
		Linhas        []Linha `json:"linhas"`
		AjustesKM     []struct {
			NumeroRota string  `json:"numeroRota"`
			KMSeara    float64 `json:"kmSeara"`
		} `json:"ajustesKm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		http.Error(w, "Requisição inválida", http.StatusBadRequest)
		return
	}
	if len(corpo.Linhas) == 0 {
		http.Error(w, "Fechamento sem linhas", http.StatusBadRequest)
		return
	}
	if corpo.Data == "" {
		corpo.Data = time.Now().Format("2006-01-02")
	}
	if corpo.DataPagamento != "" {
		AplicarDataPagamento(corpo.Linhas, corpo.DataPagamento)
	}
	for _, a := range corpo.AjustesKM {
		if !AtualizarKmSeara(corpo.Linhas, a.NumeroRota, a.KMSeara) {
			http.Error(w, "Ajuste de km para rota inexistente: "+a.NumeroRota, http.StatusBadRequest)
			return
		}
	}

	historico, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao consultar fechamentos anteriores", http.StatusInternalServerError)
		return
	}
	if dup := VerificarDuplicidade(historico, corpo.Linhas); dup != nil {
		go notificacao.EnviarAlerta("Fechamento rejeitado", dup.Error())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"erro":  "Rotas já incluídas em fechamentos anteriores",
			"rotas": dup.Numeros,
		})
		return
	}

	f := Fechamento{Data: corpo.Data, Linhas: corpo.Linhas}
	for i := range f.Linhas {
		Recalcular(&f.Linhas[i])
	}
	Agregar(&f)

	if err := h.Repo.Criar(&f); err != nil {
		http.Error(w, "Erro ao gravar fechamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

func (h *Handler) ListarFechamentos(w http.ResponseWriter, r *http.Request) {
	fs, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar fechamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fs)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	f, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Fechamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar fechamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}
