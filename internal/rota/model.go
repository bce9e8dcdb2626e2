package rota

import (
	"time"

	"gorm.io/gorm"
)

// Status é o ciclo de vida de uma rota. Os valores persistidos são os
// rótulos em português usados pelo aplicativo dos motoristas.
type Status string

const (
	StatusPendente    Status = "Pendente"
	StatusEmAndamento Status = "Em Andamento"
	StatusPernoite    Status = "Pernoite"
	StatusFinalizada  Status = "Finalizada"
	StatusProblema    Status = "Problema"
)

// Valido informa se o valor corresponde a um status conhecido.
func (s Status) Valido() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusPernoite, StatusFinalizada, StatusProblema:
		return true
	}
	return false
}

// TransicaoValida implementa a máquina de estados da rota:
// Pendente → Em Andamento → {Pernoite ⇄ Em Andamento} → Finalizada,
// com Problema como ramificação a partir de Em Andamento.
func TransicaoValida(de, para Status) bool {
	switch de {
	case StatusPendente:
		return para == StatusEmAndamento
	case StatusEmAndamento:
		return para == StatusPernoite || para == StatusFinalizada || para == StatusProblema
	case StatusPernoite:
		return para == StatusEmAndamento || para == StatusFinalizada
	case StatusProblema:
		return para == StatusEmAndamento
	}
	return false
}

// Rota representa uma viagem. Data tem granularidade de dia (YYYY-MM-DD).
// NomeMotoristaOriginal guarda o nome vindo da planilha quando o motorista
// não foi localizado no cadastro.
type Rota struct {
	ID                    uint     `gorm:"primaryKey" json:"id"`
	MotoristaID           *uint    `gorm:"index" json:"motoristaId"`
	NomeMotoristaOriginal string   `gorm:"size:255" json:"nomeMotoristaOriginal,omitempty"`
	VeiculoID             *uint    `gorm:"index" json:"veiculoId"`
	NumeroRota            string   `gorm:"size:50;index" json:"numeroRota"`
	Origem                string   `gorm:"size:255" json:"origem"`
	Destino               string   `gorm:"size:255" json:"destino"`
	Data                  string   `gorm:"size:10;not null;index" json:"data"`
	Status                Status   `gorm:"size:30;not null;default:'Pendente'" json:"status"`
	TipoCarga             string   `gorm:"size:255" json:"tipoCarga"`
	ReceitaEstimada       float64  `gorm:"not null;default:0" json:"receitaEstimada"`
	KMInicial             float64  `gorm:"not null;default:0" json:"kmInicial"`
	KMFinal               *float64 `json:"kmFinal"`
	FotoDescargaURL       string   `json:"fotoDescargaUrl,omitempty"`
	FotoSobraURL          string   `json:"fotoSobraUrl,omitempty"`
	Descricao             string   `gorm:"type:text" json:"descricao,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Rota{})
}
