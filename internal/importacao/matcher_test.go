package importacao

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotafacil/api-frota/internal/despesa"
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

type rotaStoreFake struct {
	porID       map[uint]*rota.Rota
	proximoID   uint
	falharCriar bool
}

func novoRotaStoreFake() *rotaStoreFake {
	return &rotaStoreFake{porID: map[uint]*rota.Rota{}}
}

func (f *rotaStoreFake) Criar(r *rota.Rota) error {
	if f.falharCriar {
		return errors.New("banco indisponível")
	}
	f.proximoID++
	r.ID = f.proximoID
	copia := *r
	f.porID[r.ID] = &copia
	return nil
}

func (f *rotaStoreFake) AtualizarCampos(id uint, patch rota.Patch) (*rota.Rota, error) {
	r, ok := f.porID[id]
	if !ok {
		return nil, errors.New("rota não encontrada")
	}
	patch.Aplicar(r)
	copia := *r
	return &copia, nil
}

type despesaStoreFake struct {
	criadas      []despesa.Despesa
	preExistente map[uint]int64
}

func novoDespesaStoreFake() *despesaStoreFake {
	return &despesaStoreFake{preExistente: map[uint]int64{}}
}

func (f *despesaStoreFake) Criar(d *despesa.Despesa) error {
	f.criadas = append(f.criadas, *d)
	return nil
}

func (f *despesaStoreFake) ContarPernoitesAdmin(rotaID uint) (int64, error) {
	total := f.preExistente[rotaID]
	for _, d := range f.criadas {
		if d.RotaID == rotaID && d.Tipo == despesa.TipoPernoiteAdmin {
			total++
		}
	}
	return total, nil
}

func motoristaComID(id uint, nome, placa string) motorista.Motorista {
	m := motorista.Motorista{Nome: nome, Placa: placa}
	m.ID = id
	return m
}

func frotaPadrao() []veiculo.Veiculo {
	return []veiculo.Veiculo{
		{ID: 1, Placa: "ABC-1234", ValorDiaria: 650.10, ValorKM: 2.14},
		{ID: 2, Placa: "DEF5678", ValorDiaria: 500, ValorKM: 2},
	}
}

func TestImportarRotasPlacaDesconhecidaIgnorada(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}

	res := m.ImportarRotas([]LinhaRota{
		{Placa: "ZZZ9999", NumeroRota: "R-1", Data: "2024-03-10"},
	}, frotaPadrao(), nil, nil)

	assert.Equal(t, 0, res.Processadas)
	assert.Equal(t, 1, res.Ignoradas)
	assert.Empty(t, rotas.porID)
}

func TestImportarRotasCriaFinalizadaComReceita(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}
	motoristas := []motorista.Motorista{motoristaComID(7, "João da Silva", "")}

	// A placa da planilha vem sem hífen; o cadastro tem hífen.
	res := m.ImportarRotas([]LinhaRota{{
		Placa:         "ABC1234",
		NomeMotorista: "JOAO DA SILVA",
		NumeroRota:    "R-100",
		Data:          "2024-03-10",
		KMInicial:     1000,
		KMFinal:       1250,
		Cidade:        "Barretos",
		ValorDescarga: 900,
	}}, frotaPadrao(), motoristas, nil)

	assert.Equal(t, 1, res.Processadas)
	assert.Zero(t, res.Ignoradas)
	assert.Empty(t, res.Falhas)
	require.Len(t, rotas.porID, 1)

	r := rotas.porID[1]
	assert.Equal(t, rota.StatusFinalizada, r.Status)
	require.NotNil(t, r.MotoristaID)
	assert.Equal(t, uint(7), *r.MotoristaID)
	require.NotNil(t, r.VeiculoID)
	assert.Equal(t, uint(1), *r.VeiculoID)
	assert.Equal(t, OrigemPadrao, r.Origem)
	assert.Equal(t, "Barretos", r.Destino)
	assert.Equal(t, "Seara", r.TipoCarga)
	// diária + 250 km * tarifa + descarga
	assert.InDelta(t, 650.10+250*2.14+900, r.ReceitaEstimada, 1e-9)
}

func TestImportarRotasSemKMFinalFicaEmAndamento(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}

	res := m.ImportarRotas([]LinhaRota{{
		Placa:      "DEF-5678",
		NumeroRota: "R-200",
		Data:       "2024-03-10",
		KMInicial:  100,
		KMTotal:    80,
	}}, frotaPadrao(), nil, nil)

	assert.Equal(t, 1, res.Processadas)
	r := rotas.porID[1]
	assert.Equal(t, rota.StatusEmAndamento, r.Status)
	assert.Nil(t, r.KMFinal)
	// Sem km final, a distância vem da coluna de total.
	assert.InDelta(t, 500+80*2, r.ReceitaEstimada, 1e-9)
}

func TestImportarRotasMotoristaPorContinencia(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}
	motoristas := []motorista.Motorista{motoristaComID(7, "José Antônio Pereira", "")}

	m.ImportarRotas([]LinhaRota{{
		Placa: "ABC1234", NomeMotorista: "JOSE ANTONIO", NumeroRota: "R-1", Data: "2024-03-10",
	}}, frotaPadrao(), motoristas, nil)

	require.NotNil(t, rotas.porID[1].MotoristaID)
	assert.Equal(t, uint(7), *rotas.porID[1].MotoristaID)
}

func TestImportarRotasMotoristaPelaPlaca(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}
	motoristas := []motorista.Motorista{motoristaComID(9, "Outro Nome", "abc-1234")}

	m.ImportarRotas([]LinhaRota{{
		Placa: "ABC1234", NomeMotorista: "NOME QUE NAO EXISTE", NumeroRota: "R-1", Data: "2024-03-10",
	}}, frotaPadrao(), motoristas, nil)

	require.NotNil(t, rotas.porID[1].MotoristaID)
	assert.Equal(t, uint(9), *rotas.porID[1].MotoristaID)
}

func TestImportarRotasMotoristaNaoLocalizado(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}

	res := m.ImportarRotas([]LinhaRota{{
		Placa: "ABC1234", NomeMotorista: "CARLOS EDUARDO", NumeroRota: "R-1", Data: "2024-03-10",
	}}, frotaPadrao(), nil, nil)

	assert.Equal(t, 1, res.Processadas)
	r := rotas.porID[1]
	assert.Nil(t, r.MotoristaID)
	assert.Equal(t, "CARLOS EDUARDO", r.NomeMotoristaOriginal)
	assert.Equal(t, "Seara (PENDENTE: CARLOS EDUARDO)", r.TipoCarga)
}

func TestImportarRotasAtualizaSemDesvincularMotorista(t *testing.T) {
	rotas := novoRotaStoreFake()
	motoristaID := uint(7)
	existente := rota.Rota{
		MotoristaID: &motoristaID,
		NumeroRota:  "R-100",
		Data:        "2024-03-10",
		Status:      rota.StatusEmAndamento,
		TipoCarga:   "Seara",
	}
	require.NoError(t, rotas.Criar(&existente))

	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}
	res := m.ImportarRotas([]LinhaRota{{
		Placa: "ABC1234", NomeMotorista: "NOME DESCONHECIDO", NumeroRota: "R-100", Data: "2024-03-10",
		KMInicial: 1000, KMFinal: 1250,
	}}, frotaPadrao(), nil, []rota.Rota{existente})

	assert.Equal(t, 1, res.Processadas)
	require.Len(t, rotas.porID, 1, "reimportação atualiza em vez de duplicar")

	r := rotas.porID[existente.ID]
	assert.Equal(t, rota.StatusFinalizada, r.Status)
	require.NotNil(t, r.MotoristaID, "vínculo de motorista já feito é preservado")
	assert.Equal(t, uint(7), *r.MotoristaID)
	assert.Equal(t, "Seara", r.TipoCarga, "tipo de carga não ganha marcação de pendência na atualização")
}

func TestImportarRotasLinhasDuplicadasNaMesmaPlanilha(t *testing.T) {
	rotas := novoRotaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}

	res := m.ImportarRotas([]LinhaRota{
		{Placa: "ABC1234", NumeroRota: "R-100", Data: "2024-03-10", KMInicial: 1000},
		{Placa: "ABC1234", NumeroRota: "R-100", Data: "2024-03-10", KMInicial: 1000, KMFinal: 1250},
	}, frotaPadrao(), nil, nil)

	assert.Equal(t, 2, res.Processadas)
	require.Len(t, rotas.porID, 1, "a segunda linha atualiza a rota criada pela primeira")
	assert.Equal(t, rota.StatusFinalizada, rotas.porID[1].Status)
}

func TestImportarRotasLancaDeficitDePernoites(t *testing.T) {
	rotas := novoRotaStoreFake()
	despesas := novoDespesaStoreFake()
	m := &Matcher{Rotas: rotas, Despesas: despesas}
	motoristas := []motorista.Motorista{motoristaComID(7, "João da Silva", "")}

	linha := LinhaRota{
		Placa: "ABC1234", NomeMotorista: "JOAO DA SILVA", NumeroRota: "R-100",
		Data: "2024-03-10", QtdPernoites: 2,
	}
	m.ImportarRotas([]LinhaRota{linha}, frotaPadrao(), motoristas, nil)

	require.Len(t, despesas.criadas, 2)
	for _, d := range despesas.criadas {
		assert.Equal(t, despesa.TipoPernoiteAdmin, d.Tipo)
		assert.Zero(t, d.Valor)
		assert.Equal(t, uint(7), d.MotoristaID)
		assert.Equal(t, "2024-03-10", d.Data)
	}

	// Reimportar a mesma planilha não duplica lançamentos.
	existentes := []rota.Rota{*rotas.porID[1]}
	m.ImportarRotas([]LinhaRota{linha}, frotaPadrao(), motoristas, existentes)
	assert.Len(t, despesas.criadas, 2)
}

func TestImportarRotasPernoiteSemMotoristaNaoLanca(t *testing.T) {
	despesas := novoDespesaStoreFake()
	m := &Matcher{Rotas: novoRotaStoreFake(), Despesas: despesas}

	m.ImportarRotas([]LinhaRota{{
		Placa: "ABC1234", NumeroRota: "R-100", Data: "2024-03-10", QtdPernoites: 3,
	}}, frotaPadrao(), nil, nil)

	assert.Empty(t, despesas.criadas, "pernoite sem motorista resolvido fica para triagem manual")
}

func TestImportarRotasFalhaDePersistenciaNaoContaComoProcessada(t *testing.T) {
	rotas := novoRotaStoreFake()
	rotas.falharCriar = true
	m := &Matcher{Rotas: rotas, Despesas: novoDespesaStoreFake()}

	res := m.ImportarRotas([]LinhaRota{{
		Placa: "ABC1234", NumeroRota: "R-100", Data: "2024-03-10",
	}}, frotaPadrao(), nil, nil)

	assert.Zero(t, res.Processadas)
	require.Len(t, res.Falhas, 1)
	assert.Contains(t, res.Falhas[0], "R-100")
}
