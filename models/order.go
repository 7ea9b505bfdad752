package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production stages an order moves through. Aguardando and Concluído delimit
// the pipeline; the middle stages mirror the shop floor.
const (
	StageAguardando = "Aguardando"
	StageCorte      = "Corte"
	StageEstampa    = "Estampa"
	StageCostura    = "Costura"
	StageAcabamento = "Acabamento"
	StageQualidade  = "Qualidade"
	StageConcluido  = "Concluído"
)

const (
	PriorityNormal  = "Normal"
	PriorityAlta    = "Alta"
	PriorityUrgente = "Urgente"
)

// Kanban columns derived from numeric progress. These are a coarse view and
// intentionally independent of the literal Stage field.
const (
	BucketAguardando = "Aguardando"
	BucketProducao   = "Produção"
	BucketAcabamento = "Acabamento"
	BucketConcluido  = "Concluído"
)

type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OrderNumber  string          `json:"orderNumber" gorm:"uniqueIndex;not null"`
	QuoteID      *uint           `json:"quoteId"`
	ClientID     uint            `json:"clientId" gorm:"not null"`
	ItemsSummary string          `json:"itemsSummary"`
	TotalValue   decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	DeliveryDate *time.Time      `json:"-" gorm:"type:date"`
	Stage        string          `json:"stage" gorm:"default:'Aguardando'"`
	Progress     int             `json:"progress" gorm:"default:0"` // 0-100
	Priority     string          `json:"priority" gorm:"default:'Normal'"`
	CreatedAt    time.Time       `json:"createdAt"`

	Client Client `json:"-" gorm:"foreignKey:ClientID"`
	Quote  *Quote `json:"-" gorm:"foreignKey:QuoteID"`
}

// KanbanColumns is the fixed column order for the board.
var KanbanColumns = []string{BucketAguardando, BucketProducao, BucketAcabamento, BucketConcluido}

// ProgressBucket maps a 0-100 progress value onto its kanban column.
func ProgressBucket(progress int) string {
	switch {
	case progress >= 100:
		return BucketConcluido
	case progress >= 80:
		return BucketAcabamento
	case progress >= 20:
		return BucketProducao
	default:
		return BucketAguardando
	}
}
