// Package fechamento concilia a planilha de repasse com as rotas
// registradas e guarda o fechamento aprovado como documento imutável,
// incluindo uma cópia das linhas e das tarifas vigentes no momento do
// aceite.
package fechamento

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rotafacil/api-frota/internal/veiculo"
)

// StatusLinha indica o resultado da conciliação de uma linha.
type StatusLinha string

const (
	LinhaOk         StatusLinha = "Ok"
	LinhaSemRota    StatusLinha = "Sem Rota"
	LinhaSemVeiculo StatusLinha = "Sem Veículo"
)

// Linha é uma rota conciliada dentro de um fechamento. Veiculo é uma cópia
// do cadastro no momento do fechamento: alterações de tarifa posteriores
// não mudam fechamentos já gravados. ValorDescarga é o bruto reportado na
// planilha: entra no total da linha e soma o lado "a receber" do
// fechamento.
type Linha struct {
	NumeroRota    string           `json:"numeroRota"`
	RotaID        *uint            `json:"rotaId,omitempty"`
	Veiculo       *veiculo.Veiculo `json:"veiculo,omitempty"`
	DataPagamento string           `json:"dataPagamento"`
	QtdItens      int              `json:"qtdItens"`
	KMReal        float64          `json:"kmReal"`
	KMSeara       float64          `json:"kmSeara"`
	ValorDescarga float64          `json:"valorDescarga"`
	ValorDiaria   float64          `json:"valorDiaria"`
	ValKMSeara    float64          `json:"valKmSeara"`
	ValKMPerdido  float64          `json:"valKmPerdido"`
	ValTotal      float64          `json:"valTotal"`
	Status        StatusLinha      `json:"status"`
}

// Fechamento é o documento aprovado. ValorTotal soma diária e quilometragem
// remunerada (descarga fica fora, é repassada à parte); ValorReceber é o
// bruto da planilha e Divergencia a diferença entre os dois.
type Fechamento struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Data         string  `gorm:"size:10;not null" json:"data"`
	Linhas       []Linha `gorm:"type:jsonb;serializer:json" json:"linhas"`
	ValorTotal   float64 `gorm:"not null;default:0" json:"valorTotal"`
	ValorReceber float64 `gorm:"not null;default:0" json:"valorReceber"`
	Divergencia  float64 `gorm:"not null;default:0" json:"divergencia"`

	CreatedAt time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Fechamento{})
}

// ErroRotasJaFechadas sinaliza que a planilha contém rotas presentes em
// fechamentos anteriores; nada é gravado nesse caso.
type ErroRotasJaFechadas struct {
	Numeros []string
}

func (e *ErroRotasJaFechadas) Error() string {
	return fmt.Sprintf("rotas já incluídas em fechamentos anteriores: %s", strings.Join(e.Numeros, ", "))
}
