package sobra

import (
	"time"

	"gorm.io/gorm"
)

// SobraCarga registra uma caixa que voltou da entrega, com a foto tirada
// pelo motorista na conferência.
type SobraCarga struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RotaID      uint   `gorm:"not null;index" json:"rotaId"`
	MotoristaID uint   `gorm:"index" json:"motoristaId"`
	NumeroCaixa string `gorm:"size:50" json:"numeroCaixa"`
	FotoURL     string `json:"fotoUrl,omitempty"`
	Observacoes string `gorm:"type:text" json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&SobraCarga{})
}
