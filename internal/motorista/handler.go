package motorista

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rotafacil/api-frota/internal/auth"
	"github.com/rotafacil/api-frota/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createMotoristaRequest struct {
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	Placa         string `json:"placa"`
	ModeloVeiculo string `json:"modeloVeiculo"`
	AvatarURL     string `json:"avatarUrl"`
	Senha         string `json:"senha"`
	IsAdmin       bool   `json:"isAdmin"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarMotorista cadastra um novo motorista
func (h *Handler) CriarMotorista(w http.ResponseWriter, r *http.Request) {
	var req createMotoristaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Nome == "" {
		http.Error(w, "Nome e email são obrigatórios", http.StatusBadRequest)
		return
	}

	senha := req.Senha
	precisaRedefinir := false
	if senha == "" {
		// Sem senha informada: gera uma temporária e força redefinição.
		tmp, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "Erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		senha = tmp
		precisaRedefinir = true
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	m := Motorista{
		Nome:                  req.Nome,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Placa:                 req.Placa,
		ModeloVeiculo:         req.ModeloVeiculo,
		AvatarURL:             req.AvatarURL,
		Senha:                 hash,
		IsAdmin:               req.IsAdmin,
		PrecisaRedefinirSenha: precisaRedefinir,
	}
	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		http.Error(w, "Erro ao criar motorista", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// ListarMotoristas retorna todos os motoristas
func (h *Handler) ListarMotoristas(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar motoristas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ms)
}

// BuscarPorID retorna um motorista pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de motorista inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// AtualizarMotorista altera os dados cadastrais de um motorista
func (h *Handler) AtualizarMotorista(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de motorista inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}

	var req createMotoristaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	m.Nome = req.Nome
	m.Email = req.Email
	m.Telefone = req.Telefone
	m.Placa = req.Placa
	m.ModeloVeiculo = req.ModeloVeiculo
	m.AvatarURL = req.AvatarURL

	if err := h.Repository.Salvar(h.DB, m); err != nil {
		http.Error(w, "Erro ao atualizar motorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// DeletarMotorista remove um motorista
func (h *Handler) DeletarMotorista(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de motorista inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir motorista", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
