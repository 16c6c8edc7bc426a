package snapshot

import (
	"context"
	"database/sql"
	"sync"

	"github.com/epi-tools/covid-atlas/pkg/adapters"
	"github.com/epi-tools/covid-atlas/pkg/models/domain"
	"github.com/epi-tools/covid-atlas/pkg/store/dataset"
)

type datasetStore struct {
	store Store

	once    sync.Once
	records []domain.Record
	err     error
}

// NewDatasetStore serves an imported snapshot table through the dataset.Store
// contract, with the same process-lifetime cache as the file-backed store.
func NewDatasetStore(db *sql.DB) (dataset.Store, error) {
	store, err := NewStore(db)
	if err != nil {
		return nil, err
	}
	return &datasetStore{store: store}, nil
}

func (s *datasetStore) Load(ctx context.Context) ([]domain.Record, error) {
	s.once.Do(func() {
		rows, err := s.store.GetAll(ctx)
		if err != nil {
			s.err = err
			return
		}
		s.records = make([]domain.Record, 0, len(rows))
		for _, row := range rows {
			s.records = append(s.records, adapters.MapSnapshotRecordToDomain(row))
		}
	})
	return s.records, s.err
}
