package statusdiario

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Upsert grava o status do dia para (veículo, data). Se já existe um
// registro para a chave, status e texto são sobrescritos — última gravação
// vence.
func (r *Repository) Upsert(s *StatusDiario) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "veiculo_id"}, {Name: "data"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "status_texto", "updated_at"}),
	}).Create(s).Error
}

func (r *Repository) BuscarPorVeiculoEData(veiculoID uint, data string) (*StatusDiario, error) {
	var s StatusDiario
	if err := r.DB.Where("veiculo_id = ? AND data = ?", veiculoID, data).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListarPorMes retorna os registros do mês informado (formato YYYY-MM).
func (r *Repository) ListarPorMes(anoMes string) ([]StatusDiario, error) {
	inicio := anoMes + "-01"
	fim := proximoMes(anoMes) + "-01"
	var ss []StatusDiario
	err := r.DB.Where("data >= ? AND data < ?", inicio, fim).Find(&ss).Error
	return ss, err
}

func proximoMes(anoMes string) string {
	var ano, mes int
	if _, err := fmt.Sscanf(anoMes, "%d-%d", &ano, &mes); err != nil {
		return anoMes
	}
	mes++
	if mes > 12 {
		mes = 1
		ano++
	}
	return fmt.Sprintf("%04d-%02d", ano, mes)
}
