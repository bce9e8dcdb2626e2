package sobra

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(s *SobraCarga) error {
	return r.DB.Create(s).Error
}

func (r *Repository) CriarLote(ss []*SobraCarga) error {
	if len(ss) == 0 {
		return nil
	}
	return r.DB.Create(ss).Error
}

func (r *Repository) ListarPorRota(rotaID uint) ([]SobraCarga, error) {
	var ss []SobraCarga
	err := r.DB.Where("rota_id = ?", rotaID).Order("id ASC").Find(&ss).Error
	return ss, err
}
