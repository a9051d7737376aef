package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
)

// ActiveClientRecord is the Active-Record call convention over the client
// record store: a row object that saves and deletes itself. It is a thin
// shell; every statement still runs through the one store code path, so the
// two conventions can never issue divergent SQL.
type ActiveClientRecord struct {
	entity.ClientRecord

	store repository.ClientRecordRepository
}

// NewActiveClientRecord binds a fresh record to a store
func NewActiveClientRecord(store repository.ClientRecordRepository) *ActiveClientRecord {
	return &ActiveClientRecord{store: store}
}

// All returns every record in the table, each bound to the store
func All(ctx context.Context, store repository.ClientRecordRepository) ([]*ActiveClientRecord, error) {
	records, err := store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	bound := make([]*ActiveClientRecord, 0, len(records))
	for i := range records {
		bound = append(bound, &ActiveClientRecord{ClientRecord: records[i], store: store})
	}
	return bound, nil
}

// Find looks up one record by id; a missing id yields (nil, nil)
func Find(ctx context.Context, store repository.ClientRecordRepository, id uint) (*ActiveClientRecord, error) {
	rec, err := store.GetByID(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return &ActiveClientRecord{ClientRecord: *rec, store: store}, nil
}

// Save inserts the record when it has no id yet and updates it otherwise.
// On insert the assigned id and creation timestamp are filled in.
func (r *ActiveClientRecord) Save(ctx context.Context) error {
	if err := entity.Validate(&r.ClientRecord); err != nil {
		return err
	}

	if r.ID == 0 {
		return r.store.Insert(ctx, &r.ClientRecord)
	}
	_, err := r.store.Update(ctx, &r.ClientRecord)
	return err
}

// Delete removes the record's row; deleting an unsaved record is a no-op
// reported as 0 affected rows
func (r *ActiveClientRecord) Delete(ctx context.Context) (int64, error) {
	if r.ID == 0 {
		return 0, nil
	}
	return r.store.Delete(ctx, r.ID)
}
