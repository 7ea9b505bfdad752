package models

import "time"

const (
	SupplierStatusAtivo   = "Ativo"
	SupplierStatusInativo = "Inativo"
)

type Supplier struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"not null"`
	Contact            string    `json:"contact"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Category           string    `json:"category"` // Tecidos, Estamparia, Confecção, Acabamentos, Etiquetas
	Status             string    `json:"status" gorm:"default:'Ativo'"`
	Rating             int       `json:"rating" gorm:"default:5"` // 1-5
	ProductionTimeDays int       `json:"productionTimeDays" gorm:"default:7"`
	CreatedAt          time.Time `json:"createdAt"`
}
