// Package automacao traduz transições de status de rota em comandos de
// upsert no quadro diário da frota. Os efeitos são derivados e nunca podem
// falhar ou reverter a atualização de rota que os originou: erros são
// registrados em log e engolidos (entrega no máximo uma vez, sem retry).
package automacao

import (
	"log"
	"time"

	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/statusdiario"
)

// StatusStore é a superfície mínima de persistência que o automator usa.
type StatusStore interface {
	Upsert(s *statusdiario.StatusDiario) error
	BuscarPorVeiculoEData(veiculoID uint, data string) (*statusdiario.StatusDiario, error)
}

type Automator struct {
	Statuses StatusStore
}

func New(statuses StatusStore) *Automator {
	return &Automator{Statuses: statuses}
}

// AoTransicionar emite os upserts do quadro diário para a transição da
// rota. Toda aritmética de data usa a data da própria rota, nunca o relógio
// do sistema, para lançamentos retroativos continuarem corretos. Rotas sem
// veículo são ignoradas silenciosamente.
func (a *Automator) AoTransicionar(r rota.Rota) {
	if r.VeiculoID == nil {
		return
	}
	veiculoID := *r.VeiculoID
	data := r.Data

	switch r.Status {
	case rota.StatusEmAndamento:
		a.upsert(veiculoID, data, statusdiario.CodigoEmRota, "Em Rota (Automático)")

	case rota.StatusPernoite:
		a.upsert(veiculoID, data, statusdiario.CodigoPernoite, "Pernoite (Automático)")
		if amanha, ok := diaSeguinte(data); ok {
			a.upsert(veiculoID, amanha, statusdiario.CodigoDisponivel, "Disponível (Pós-Pernoite)")
		}

	case rota.StatusFinalizada:
		// Um pernoite já registrado no dia não é sobrescrito pela
		// finalização.
		existente, err := a.Statuses.BuscarPorVeiculoEData(veiculoID, data)
		if err != nil || existente.Status != statusdiario.CodigoPernoite {
			a.upsert(veiculoID, data, statusdiario.CodigoFinalizada, "Finalizada (Automático)")
		}
		if amanha, ok := diaSeguinte(data); ok {
			a.upsert(veiculoID, amanha, statusdiario.CodigoDisponivel, "Disponível (Pós-Rota)")
		}
	}
}

func (a *Automator) upsert(veiculoID uint, data string, codigo statusdiario.Codigo, texto string) {
	s := statusdiario.StatusDiario{
		VeiculoID:   veiculoID,
		Data:        data,
		Status:      codigo,
		StatusTexto: texto,
	}
	if err := a.Statuses.Upsert(&s); err != nil {
		log.Printf("automação de frota: falha ao gravar status %s em (%d, %s): %v", codigo, veiculoID, data, err)
	}
}

func diaSeguinte(data string) (string, bool) {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		log.Printf("automação de frota: data de rota inválida %q: %v", data, err)
		return "", false
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02"), true
}
