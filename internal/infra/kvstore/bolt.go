package kvstore

import (
	"context"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tour-booking-console/internal/pkg/errs"
)

const bucketProgress = "wizard_progress"

// BoltKV keeps wizard progress in a single bbolt bucket on local disk.
type BoltKV struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file and its bucket.
func OpenBolt(path string) (*BoltKV, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errs.Wrap(err, "failed to create bolt directory")
		}
	}
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open bolt database")
	}
	return NewBoltKV(db)
}

func NewBoltKV(db *bolt.DB) (*BoltKV, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketProgress))
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create progress bucket")
	}
	return &BoltKV{db: db}, nil
}

func (b *BoltKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "BoltKV.Get")
	defer span.End()

	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketProgress)).Get([]byte(key))
		if res != nil {
			// bbolt values are only valid inside the transaction
			out = append([]byte(nil), res...)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	return out, out != nil, nil
}

func (b *BoltKV) Put(ctx context.Context, key string, value []byte) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "BoltKV.Put")
	defer span.End()

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketProgress)).Put([]byte(key), value)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (b *BoltKV) Delete(ctx context.Context, key string) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "BoltKV.Delete")
	defer span.End()

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketProgress)).Delete([]byte(key))
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}
