package stcore

import (
	"time"

	"go.etcd.io/bbolt"

	"github.com/open-control-systems/cast-hub/components/status"
)

// NewBboltDB opens the bbolt database.
//
// Parameters:
//   - dbPath - database file path, if it doesn't exist then it will be created automatically.
//
// Remarks:
//   - Opening fails after one second if another process holds the database lock.
//
// References:
//   - https://github.com/etcd-io/bbolt
func NewBboltDB(dbPath string) (*bbolt.DB, error) {
	return bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
}

// BboltDBBucket is a wrapper over the bbolt database to operate on a single bucket.
type BboltDBBucket struct {
	db     *bbolt.DB
	bucket []byte
}

// NewBboltDBBucket initialization.
//
// Parameters:
//   - db - bbolt database instance.
//   - bucket - bbolt database bucket.
func NewBboltDBBucket(db *bbolt.DB, bucket string) *BboltDBBucket {
	return &BboltDBBucket{
		db:     db,
		bucket: []byte(bucket),
	}
}

// Read reads a blob of data from the bucket.
func (b *BboltDBBucket) Read(key string) (Blob, error) {
	blob := Blob{}

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.bucket)
		if bucket == nil {
			return status.StatusNoData
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return status.StatusNoData
		}

		// The slice is only valid while the transaction is open.
		blob.Data = append([]byte(nil), data...)

		return nil
	})
	if err != nil {
		return Blob{}, err
	}

	return blob, nil
}

// Write writes a blob to the bucket.
func (b *BboltDBBucket) Write(key string, blob Blob) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(b.bucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(key), blob.Data)
	})
}

// Close is non-operational, the database is owned by the caller.
func (*BboltDBBucket) Close() error {
	return nil
}
