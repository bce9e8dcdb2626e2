package fechamento

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(f *Fechamento) error {
	return r.DB.Create(f).Error
}

func (r *Repository) ListarTodos() ([]Fechamento, error) {
	var fs []Fechamento
	err := r.DB.Order("created_at DESC").Find(&fs).Error
	return fs, err
}

func (r *Repository) BuscarPorID(id uint) (*Fechamento, error) {
	var f Fechamento
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}
