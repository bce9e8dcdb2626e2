package motorista

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Motorista, error)
	Salvar(db *gorm.DB, m *Motorista) error
	BuscarPorID(db *gorm.DB, id uint) (*Motorista, error)
	ListarTodos(db *gorm.DB) ([]Motorista, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Motorista, error) {
	var m Motorista
	if err := db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Motorista) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Motorista, error) {
	var m Motorista
	err := db.First(&m, id).Error
	return &m, err
}

// ListarTodos retorna os motoristas ordenados por nome.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Motorista, error) {
	var ms []Motorista
	err := db.Order("nome").Find(&ms).Error
	return ms, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Motorista{}, id).Error
}
