package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

const (
	TransactionStatusPendente   = "Pendente"
	TransactionStatusConfirmado = "Confirmado"
	TransactionStatusAgendado   = "Agendado"
)

// Transaction is a ledger entry. Amount is always a positive magnitude; the
// income/expense direction lives in Type, never in the sign.
type Transaction struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	TransactionNumber string          `json:"transactionNumber" gorm:"uniqueIndex;not null"`
	OrderID           *uint           `json:"orderId"`
	Description       string          `json:"description" gorm:"not null"`
	Category          string          `json:"category"` // Vendas, Matéria Prima, Manutenção, Despesas Fixas
	Type              string          `json:"type" gorm:"not null"`
	Amount            decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	Status            string          `json:"status" gorm:"default:'Pendente'"`
	TransactionDate   time.Time       `json:"-" gorm:"type:date"`
	CreatedAt         time.Time       `json:"createdAt"`

	Order *Order `json:"-" gorm:"foreignKey:OrderID"`
}
