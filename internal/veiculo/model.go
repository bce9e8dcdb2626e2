package veiculo

import (
	"time"

	"gorm.io/gorm"
)

// Veiculo representa um caminhão da frota com sua tabela de tarifas.
// ValorDiaria e ValorKM são os insumos do cálculo de receita por viagem.
type Veiculo struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Placa       string  `gorm:"size:10;not null;unique" json:"placa"`
	Modelo      string  `gorm:"size:255" json:"modelo"`
	ValorDiaria float64 `gorm:"not null;default:0" json:"valorDiaria"`
	ValorKM     float64 `gorm:"not null;default:0" json:"valorKm"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Veiculo{})
}
