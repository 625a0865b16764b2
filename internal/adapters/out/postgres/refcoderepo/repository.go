// Package refcoderepo issues ticket and tracking numbers from a per-day
// sequence table. Running inside the booking transaction, the row upsert
// both serializes concurrent issuers (the winner holds the row lock until
// commit) and rolls the increment back when the booking fails, so committed
// numbers carry no gaps.
package refcoderepo

import (
	"context"
	"time"

	"reservation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// SequenceDTO represents one (kind, day) counter row.
type SequenceDTO struct {
	Kind    string `gorm:"primaryKey"`
	Day     string `gorm:"primaryKey"`
	LastSeq int
}

// TableName specifies the database table name for sequence rows.
func (SequenceDTO) TableName() string {
	return "ref_code_sequences"
}

// GormRefCodeGenerator implements RefCodeGenerator on the sequence table.
type GormRefCodeGenerator struct {
	db *gorm.DB
}

// NewGormRefCodeGenerator creates a generator bound to the given connection.
// Pass the transaction handle so issuance commits with the record insert.
func NewGormRefCodeGenerator(db *gorm.DB) *GormRefCodeGenerator {
	return &GormRefCodeGenerator{db: db}
}

// Next increments the counter for the code kind on the given day and returns
// the resulting reference code. Returns SequenceExhaustedError once the daily
// counter passes its maximum.
func (g *GormRefCodeGenerator) Next(ctx context.Context, kind kernel.RefCodeKind, when time.Time) (kernel.RefCode, error) {
	if err := kind.Validate(); err != nil {
		return kernel.RefCode{}, err
	}

	day := when.UTC().Format("20060102")

	var seq int
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO ref_code_sequences (kind, day, last_seq)
		VALUES (?, ?, 1)
		ON CONFLICT (kind, day)
		DO UPDATE SET last_seq = ref_code_sequences.last_seq + 1
		RETURNING last_seq
	`, kind.Prefix(), day).Scan(&seq).Error
	if err != nil {
		return kernel.RefCode{}, err
	}

	return kernel.NewRefCode(kind, when, seq)
}
