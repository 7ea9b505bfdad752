// services/numbering.go
package services

import (
	"fmt"

	"gorm.io/gorm"
)

// Sequence names, one per numbered entity kind.
const (
	SeqQuotes       = "quotes"
	SeqOrders       = "orders"
	SeqTransactions = "transactions"
)

// NextSequence issues the next ordinal for the given kind. The upsert takes a
// row lock on the sequence row, so concurrent creators running in their own
// transactions are serialized; if the caller's transaction rolls back, the
// increment rolls back with it and no number is burned without a record.
func NextSequence(tx *gorm.DB, kind string) (int64, error) {
	var value int64
	err := tx.Raw(`
		INSERT INTO sequences (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`, kind).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("next sequence for %s: %w", kind, err)
	}
	return value, nil
}

// QuoteNumber formats a quote number like COT-2025-001.
func QuoteNumber(year int, seq int64) string {
	return fmt.Sprintf("COT-%d-%03d", year, seq)
}

// OrderNumber formats an order number. Order numbers start at PED-1024 and
// never reset.
func OrderNumber(seq int64) string {
	return fmt.Sprintf("PED-%d", 1023+seq)
}

// TransactionNumber formats a transaction number, starting at TRX-9800.
func TransactionNumber(seq int64) string {
	return fmt.Sprintf("TRX-%d", 9799+seq)
}
