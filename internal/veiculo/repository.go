package veiculo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Veiculo) error {
	return r.DB.Create(v).Error
}

// ListarTodos retorna a frota ordenada por placa.
func (r *Repository) ListarTodos() ([]Veiculo, error) {
	var vs []Veiculo
	err := r.DB.Order("placa").Find(&vs).Error
	return vs, err
}

func (r *Repository) BuscarPorID(id uint) (*Veiculo, error) {
	var v Veiculo
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Atualizar(v *Veiculo) error {
	return r.DB.Save(v).Error
}

// AtualizarTarifas altera apenas os valores de diária e de km de um veículo.
func (r *Repository) AtualizarTarifas(id uint, valorDiaria, valorKM float64) error {
	return r.DB.Model(&Veiculo{}).Where("id = ?", id).Updates(map[string]interface{}{
		"valor_diaria": valorDiaria,
		"valor_km":     valorKM,
	}).Error
}

// UpsertPorPlaca insere a frota em lote, atualizando modelo e tarifas
// quando a placa já existe.
func (r *Repository) UpsertPorPlaca(vs []Veiculo) error {
	if len(vs) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "placa"}},
		DoUpdates: clause.AssignmentColumns([]string{"modelo", "valor_diaria", "valor_km"}),
	}).Create(&vs).Error
}
