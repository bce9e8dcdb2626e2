package motorista

import (
	"gorm.io/gorm"
)

// Motorista representa um condutor da frota. Placa é a placa do veículo
// habitual do motorista, usada como último recurso na resolução de veículo.
type Motorista struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Placa                 string `json:"placa"`
	ModeloVeiculo         string `json:"modeloVeiculo"`
	AvatarURL             string `json:"avatarUrl"`
	Senha                 string `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`
	PrecisaRedefinirSenha bool   `json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Motorista{})
}
