// services/schedule_service.go
package services

import (
	"log"
	"time"

	"estamparia-backend/models"
	"estamparia-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

func (s *ScheduleService) StartScheduler() {
	c := cron.New()

	// Run every day at 6 AM
	c.AddFunc("0 6 * * *", func() {
		s.ReleaseDueTransactions()
	})

	c.Start()
	log.Println("Transaction scheduler started")
}

// ReleaseDueTransactions moves Agendado transactions whose date has arrived
// to Pendente so they show up in the finance queue for confirmation.
func (s *ScheduleService) ReleaseDueTransactions() {
	today := utils.BeginningOfDay(time.Now())

	result := s.db.Model(&models.Transaction{}).
		Where("status = ? AND transaction_date <= ?", models.TransactionStatusAgendado, today).
		Update("status", models.TransactionStatusPendente)
	if result.Error != nil {
		log.Printf("Failed to release scheduled transactions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Released %d scheduled transaction(s)", result.RowsAffected)
	}
}
