package rota

// Patch enumera os campos de rota que podem ser alterados parcialmente.
// Campo nil significa "não alterar" — nunca sobrescreve valores existentes
// por acidente.
type Patch struct {
	MotoristaID           *uint    `json:"motoristaId,omitempty"`
	NomeMotoristaOriginal *string  `json:"nomeMotoristaOriginal,omitempty"`
	VeiculoID             *uint    `json:"veiculoId,omitempty"`
	Origem                *string  `json:"origem,omitempty"`
	Destino               *string  `json:"destino,omitempty"`
	Data                  *string  `json:"data,omitempty"`
	Status                *Status  `json:"status,omitempty"`
	TipoCarga             *string  `json:"tipoCarga,omitempty"`
	ReceitaEstimada       *float64 `json:"receitaEstimada,omitempty"`
	KMInicial             *float64 `json:"kmInicial,omitempty"`
	KMFinal               *float64 `json:"kmFinal,omitempty"`
	FotoDescargaURL       *string  `json:"fotoDescargaUrl,omitempty"`
	FotoSobraURL          *string  `json:"fotoSobraUrl,omitempty"`
	Descricao             *string  `json:"descricao,omitempty"`
}

// Campos converte o patch no mapa de colunas que o GORM deve atualizar.
func (p Patch) Campos() map[string]interface{} {
	campos := map[string]interface{}{}
	if p.MotoristaID != nil {
		campos["motorista_id"] = *p.MotoristaID
	}
	if p.NomeMotoristaOriginal != nil {
		campos["nome_motorista_original"] = *p.NomeMotoristaOriginal
	}
	if p.VeiculoID != nil {
		campos["veiculo_id"] = *p.VeiculoID
	}
	if p.Origem != nil {
		campos["origem"] = *p.Origem
	}
	if p.Destino != nil {
		campos["destino"] = *p.Destino
	}
	if p.Data != nil {
		campos["data"] = *p.Data
	}
	if p.Status != nil {
		campos["status"] = *p.Status
	}
	if p.TipoCarga != nil {
		campos["tipo_carga"] = *p.TipoCarga
	}
	if p.ReceitaEstimada != nil {
		campos["receita_estimada"] = *p.ReceitaEstimada
	}
	if p.KMInicial != nil {
		campos["km_inicial"] = *p.KMInicial
	}
	if p.KMFinal != nil {
		campos["km_final"] = *p.KMFinal
	}
	if p.FotoDescargaURL != nil {
		campos["foto_descarga_url"] = *p.FotoDescargaURL
	}
	if p.FotoSobraURL != nil {
		campos["foto_sobra_url"] = *p.FotoSobraURL
	}
	if p.Descricao != nil {
		campos["descricao"] = *p.Descricao
	}
	return campos
}

// Aplicar copia os campos presentes do patch para a rota em memória.
func (p Patch) Aplicar(r *Rota) {
	if p.MotoristaID != nil {
		r.MotoristaID = p.MotoristaID
	}
	if p.NomeMotoristaOriginal != nil {
		r.NomeMotoristaOriginal = *p.NomeMotoristaOriginal
	}
	if p.VeiculoID != nil {
		r.VeiculoID = p.VeiculoID
	}
	if p.Origem != nil {
		r.Origem = *p.Origem
	}
	if p.Destino != nil {
		r.Destino = *p.Destino
	}
	if p.Data != nil {
		r.Data = *p.Data
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.TipoCarga != nil {
		r.TipoCarga = *p.TipoCarga
	}
	if p.ReceitaEstimada != nil {
		r.ReceitaEstimada = *p.ReceitaEstimada
	}
	if p.KMInicial != nil {
		r.KMInicial = *p.KMInicial
	}
	if p.KMFinal != nil {
		r.KMFinal = p.KMFinal
	}
	if p.FotoDescargaURL != nil {
		r.FotoDescargaURL = *p.FotoDescargaURL
	}
	if p.FotoSobraURL != nil {
		r.FotoSobraURL = *p.FotoSobraURL
	}
	if p.Descricao != nil {
		r.Descricao = *p.Descricao
	}
}
