package statusdiario

import (
	"time"

	"gorm.io/gorm"
)

// Codigo é o status operacional de um veículo em um dia. A codificação
// persistida mantém as letras históricas do quadro da frota.
type Codigo string

const (
	CodigoEmRota        Codigo = "R"
	CodigoCompletaCarga Codigo = "C"
	CodigoDisponivel    Codigo = "D"
	CodigoPernoite      Codigo = "P"
	CodigoManutencao    Codigo = "M"
	CodigoOficina       Codigo = "O"
	CodigoFinalizada    Codigo = "F"
)

var rotulos = map[Codigo]string{
	CodigoEmRota:        "Em Rota",
	CodigoCompletaCarga: "Completa Carga",
	CodigoDisponivel:    "Disponível",
	CodigoPernoite:      "Pernoite",
	CodigoManutencao:    "Manutenção",
	CodigoOficina:       "Oficina",
	CodigoFinalizada:    "Finalizada",
}

func (c Codigo) Valido() bool {
	_, ok := rotulos[c]
	return ok
}

// Rotulo devolve o texto de exibição padrão do código.
func (c Codigo) Rotulo() string {
	return rotulos[c]
}

// StatusDiario registra o status de um veículo em um dia. Há no máximo um
// registro por (veículo, data); gravações posteriores sobrescrevem.
type StatusDiario struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	VeiculoID   uint   `gorm:"not null;uniqueIndex:idx_veiculo_data" json:"veiculoId"`
	Data        string `gorm:"size:10;not null;uniqueIndex:idx_veiculo_data" json:"data"`
	Status      Codigo `gorm:"size:1;not null" json:"status"`
	StatusTexto string `gorm:"size:100" json:"statusTexto"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&StatusDiario{})
}
