package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"loan-cost/domain"
)

// CalculationRepositoryMemory is an in-memory CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates an empty in-memory repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
	}
}

// Save stores the record, assigning an ID and timestamp when missing.
func (r *CalculationRepositoryMemory) Save(record domain.CalculationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// Len reports the number of stored records.
func (r *CalculationRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
