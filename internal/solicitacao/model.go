package solicitacao

import (
	"time"

	"gorm.io/gorm"
)

// Tipo distingue adiantamento (antes da viagem) de reembolso (depois).
type Tipo string

const (
	TipoAdiantamento Tipo = "Adiantamento"
	TipoReembolso    Tipo = "Reembolso"
)

func (t Tipo) Valido() bool {
	return t == TipoAdiantamento || t == TipoReembolso
}

// Status acompanha a triagem financeira da solicitação.
type Status string

const (
	StatusAguardando Status = "Aguardando"
	StatusAprovado   Status = "Aprovado"
	StatusPago       Status = "Pago"
	StatusRecusado   Status = "Recusado"
)

func (s Status) Valido() bool {
	switch s {
	case StatusAguardando, StatusAprovado, StatusPago, StatusRecusado:
		return true
	}
	return false
}

// SolicitacaoPagamento é um pedido de pagamento feito por um motorista.
type SolicitacaoPagamento struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	MotoristaID uint    `gorm:"not null;index" json:"motoristaId"`
	RotaID      *uint   `gorm:"index" json:"rotaId,omitempty"`
	Tipo        Tipo    `gorm:"size:30;not null" json:"tipo"`
	Valor       float64 `gorm:"not null" json:"valor"`
	Status      Status  `gorm:"size:20;not null;default:'Aguardando'" json:"status"`
	Observacoes string  `gorm:"type:text" json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&SolicitacaoPagamento{})
}
