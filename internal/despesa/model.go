package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Tipo classifica uma despesa de viagem. TipoPernoiteAdmin é lançado
// apenas por administradores (ou pela importação de planilha).
type Tipo string

const (
	TipoCombustivel   Tipo = "Combustível"
	TipoPedagio       Tipo = "Pedágio"
	TipoAlimentacao   Tipo = "Alimentação"
	TipoManutencao    Tipo = "Manutenção"
	TipoOutros        Tipo = "Outros"
	TipoPernoiteAdmin Tipo = "Pernoite (Admin)"
)

func (t Tipo) Valido() bool {
	switch t {
	case TipoCombustivel, TipoPedagio, TipoAlimentacao, TipoManutencao, TipoOutros, TipoPernoiteAdmin:
		return true
	}
	return false
}

// Despesa é imutável depois de criada: não há operações de alteração ou
// remoção no escopo do sistema.
type Despesa struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RotaID      uint    `gorm:"not null;index" json:"rotaId"`
	MotoristaID uint    `gorm:"index" json:"motoristaId"`
	Tipo        Tipo    `gorm:"size:50;not null" json:"tipo"`
	Valor       float64 `gorm:"not null;default:0" json:"valor"`
	Data        string  `gorm:"size:10;not null" json:"data"`
	Observacoes string  `gorm:"type:text" json:"observacoes,omitempty"`
	ImgURL      string  `json:"imgUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}
