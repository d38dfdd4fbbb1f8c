package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"

	"oficina_xpto/internal/domain/entities"
)

// countingLoader records how many times each list was hit.
type countingLoader struct {
	parts      []entities.Part
	partsErr   error
	partsCalls int
}

func (l *countingLoader) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return nil, nil
}

func (l *countingLoader) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return nil, nil
}

func (l *countingLoader) ListTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return nil, nil
}

func (l *countingLoader) ListParts(ctx context.Context) ([]entities.Part, error) {
	l.partsCalls++
	return l.parts, l.partsErr
}

func (l *countingLoader) ListWorkServices(ctx context.Context) ([]entities.WorkService, error) {
	return nil, nil
}

func TestCachedReferenceLoader_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	parts := []entities.Part{{ID: "p-1", Name: "Brake pad", Code: "BRK-01", UnitPrice: 80, Stock: 5}}
	encoded, _ := json.Marshal(parts)

	mock.ExpectGet("refs:parts").SetVal(string(encoded))

	next := &countingLoader{partsErr: errors.New("should not be called")}
	loader := NewCachedReferenceLoader(next, db)

	got, err := loader.ListParts(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "p-1" {
		t.Errorf("unexpected parts from cache: %+v", got)
	}
	if next.partsCalls != 0 {
		t.Errorf("expected source untouched on hit, got %d calls", next.partsCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCachedReferenceLoader_MissLoadsAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	parts := []entities.Part{{ID: "p-1", Name: "Brake pad", Code: "BRK-01", UnitPrice: 80, Stock: 5}}
	encoded, _ := json.Marshal(parts)

	mock.ExpectGet("refs:parts").RedisNil()
	mock.ExpectSet("refs:parts", encoded, defaultReferenceTTL).SetVal("OK")

	next := &countingLoader{parts: parts}
	loader := NewCachedReferenceLoader(next, db)

	got, err := loader.ListParts(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 part, got %d", len(got))
	}
	if next.partsCalls != 1 {
		t.Errorf("expected one source call, got %d", next.partsCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCachedReferenceLoader_RedisDownFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	parts := []entities.Part{{ID: "p-1", Name: "Brake pad", Code: "BRK-01", UnitPrice: 80, Stock: 5}}
	encoded, _ := json.Marshal(parts)

	mock.ExpectGet("refs:parts").SetErr(errors.New("connection refused"))
	mock.ExpectSet("refs:parts", encoded, defaultReferenceTTL).SetErr(errors.New("connection refused"))

	next := &countingLoader{parts: parts}
	loader := NewCachedReferenceLoader(next, db)

	got, err := loader.ListParts(context.Background())
	if err != nil {
		t.Fatalf("expected cache failure to be soft, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 part, got %d", len(got))
	}
	if next.partsCalls != 1 {
		t.Errorf("expected one source call, got %d", next.partsCalls)
	}
}

func TestCachedReferenceLoader_SourceErrorPropagates(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("refs:parts").RedisNil()

	next := &countingLoader{partsErr: errors.New("scan failed")}
	loader := NewCachedReferenceLoader(next, db)

	if _, err := loader.ListParts(context.Background()); err == nil {
		t.Fatal("expected error from source")
	}
}
