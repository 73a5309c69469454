package dataset

import (
	"log"

	"github.com/go-frame/frame"
	uuid "github.com/gofrs/uuid"
)

// A partition is a contiguous, independently processable shard of a Dataset.
// Partitions are not interacted with directly, instead being manipulated in
// parallel by Dataset operations.
type partition struct {
	id   string
	rows []frame.Row
}

// createPartition creates a new partition containing the given rows
func createPartition(rows []frame.Row) *partition {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for partition: %v", err)
	}
	return &partition{id: id.String(), rows: rows}
}

// ID retrieves the ID of this partition
func (p *partition) ID() string {
	return p.id
}

// GetNumRows retrieves the number of rows in this partition
func (p *partition) GetNumRows() int {
	return len(p.rows)
}

// GetRows retrieves the rows of this partition. The returned slice must not be modified.
func (p *partition) GetRows() []frame.Row {
	return p.rows
}

// partitionRows splits rows into numPartitions contiguous partitions of
// near-equal size, preserving row order across partition boundaries
func partitionRows(rows []frame.Row, numPartitions int) []*partition {
	if numPartitions < 1 {
		numPartitions = 1
	}
	parts := make([]*partition, numPartitions)
	chunk := len(rows) / numPartitions
	rem := len(rows) % numPartitions
	start := 0
	for i := 0; i < numPartitions; i++ {
		end := start + chunk
		if i < rem {
			end++
		}
		parts[i] = createPartition(rows[start:end])
		start = end
	}
	return parts
}
