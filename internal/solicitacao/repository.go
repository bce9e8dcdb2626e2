package solicitacao

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(s *SolicitacaoPagamento) error {
	return r.DB.Create(s).Error
}

func (r *Repository) ListarTodas() ([]SolicitacaoPagamento, error) {
	var ss []SolicitacaoPagamento
	err := r.DB.Order("created_at DESC").Find(&ss).Error
	return ss, err
}

func (r *Repository) ListarPorMotorista(motoristaID uint) ([]SolicitacaoPagamento, error) {
	var ss []SolicitacaoPagamento
	err := r.DB.Where("motorista_id = ?", motoristaID).Order("created_at DESC").Find(&ss).Error
	return ss, err
}

func (r *Repository) BuscarPorID(id uint) (*SolicitacaoPagamento, error) {
	var s SolicitacaoPagamento
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) AtualizarStatus(id uint, status Status) error {
	return r.DB.Model(&SolicitacaoPagamento{}).Where("id = ?", id).Update("status", status).Error
}
