package despesa

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(d *Despesa) error {
	return r.DB.Create(d).Error
}

func (r *Repository) CriarLote(ds []*Despesa) error {
	if len(ds) == 0 {
		return nil
	}
	return r.DB.Create(&ds).Error
}

// ListarTodas retorna as despesas, mais recentes primeiro.
func (r *Repository) ListarTodas() ([]Despesa, error) {
	var ds []Despesa
	err := r.DB.Order("data DESC, id ASC").Find(&ds).Error
	return ds, err
}

func (r *Repository) ListarPorRota(rotaID uint) ([]Despesa, error) {
	var ds []Despesa
	err := r.DB.Where("rota_id = ?", rotaID).Order("data DESC, id ASC").Find(&ds).Error
	return ds, err
}

// ContarPernoitesAdmin conta os lançamentos administrativos de pernoite de
// uma rota — usado pela importação para criar apenas o déficit.
func (r *Repository) ContarPernoitesAdmin(rotaID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&Despesa{}).
		Where("rota_id = ? AND tipo = ?", rotaID, TipoPernoiteAdmin).
		Count(&n).Error
	return n, err
}

// ListarPorRotas retorna as despesas das rotas informadas.
func (r *Repository) ListarPorRotas(rotaIDs []uint) ([]Despesa, error) {
	if len(rotaIDs) == 0 {
		return nil, nil
	}
	var ds []Despesa
	err := r.DB.Where("rota_id IN ?", rotaIDs).Find(&ds).Error
	return ds, err
}
