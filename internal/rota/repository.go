package rota

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Rota
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(rota *Rota) error {
	return r.DB.Create(rota).Error
}

// ListarTodas retorna o histórico completo, mais recentes primeiro.
// A ordenação secundária por id mantém a listagem estável.
func (r *Repository) ListarTodas() ([]Rota, error) {
	var rotas []Rota
	err := r.DB.Order("data DESC, id ASC").Find(&rotas).Error
	return rotas, err
}

func (r *Repository) BuscarPorID(id uint) (*Rota, error) {
	var rota Rota
	if err := r.DB.First(&rota, id).Error; err != nil {
		return nil, err
	}
	return &rota, nil
}

// BuscarPorNumeroEData localiza uma rota pelo identificador externo e pela
// data da viagem — a chave usada pela importação para decidir entre
// atualizar e criar.
func (r *Repository) BuscarPorNumeroEData(numero, data string) (*Rota, error) {
	var rota Rota
	if err := r.DB.Where("numero_rota = ? AND data = ?", numero, data).First(&rota).Error; err != nil {
		return nil, err
	}
	return &rota, nil
}

func (r *Repository) ListarPorStatus(status Status) ([]Rota, error) {
	var rotas []Rota
	err := r.DB.Where("status = ?", status).Order("data DESC, id ASC").Find(&rotas).Error
	return rotas, err
}

// ListarPorPeriodo retorna as rotas com data entre inicio e fim (inclusive).
func (r *Repository) ListarPorPeriodo(inicio, fim string) ([]Rota, error) {
	var rotas []Rota
	err := r.DB.Where("data >= ? AND data <= ?", inicio, fim).Order("data DESC, id ASC").Find(&rotas).Error
	return rotas, err
}

// AtualizarCampos aplica um patch parcial e retorna a rota atualizada.
func (r *Repository) AtualizarCampos(id uint, patch Patch) (*Rota, error) {
	campos := patch.Campos()
	if len(campos) > 0 {
		if err := r.DB.Model(&Rota{}).Where("id = ?", id).Updates(campos).Error; err != nil {
			return nil, err
		}
	}
	return r.BuscarPorID(id)
}

// AtualizarStatus altera apenas o status da rota.
func (r *Repository) AtualizarStatus(id uint, status Status) error {
	return r.DB.Model(&Rota{}).Where("id = ?", id).Update("status", status).Error
}
