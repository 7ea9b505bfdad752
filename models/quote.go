package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	QuoteStatusRascunho  = "Rascunho"
	QuoteStatusPendente  = "Pendente"
	QuoteStatusEnviada   = "Enviada"
	QuoteStatusAprovada  = "Aprovada"
	QuoteStatusRejeitada = "Rejeitada"
)

// Quote is a pre-sale proposal. It points at a registered client or carries
// inline lead fields for prospects that were never registered; when ClientID
// is set the client's data wins for display.
type Quote struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	QuoteNumber  string          `json:"quoteNumber" gorm:"uniqueIndex;not null"`
	ClientID     *uint           `json:"clientId"`
	LeadName     string          `json:"leadName"`
	LeadContact  string          `json:"leadContact"`
	ItemsSummary string          `json:"itemsSummary"`
	TotalValue   decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	Status       string          `json:"status" gorm:"default:'Rascunho'"`
	CreatedAt    time.Time       `json:"createdAt"`

	Client *Client `json:"-" gorm:"foreignKey:ClientID"`
}
