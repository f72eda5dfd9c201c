// Package objectstore provides a NATS JetStream implementation of the
// core.ObjectStore interface for text payloads.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsObjectStore implements core.ObjectStore using a NATS object store
// bucket. Text payloads routinely exceed the NATS message size limit, so jobs
// reference them by key instead of carrying them inline.
type NatsObjectStore struct {
	bucket string
	store  nats.ObjectStore
}

// New creates a NatsObjectStore, creating the bucket if it does not already
// exist and binding to it otherwise.
func New(jetstreamContext nats.JetStreamContext, bucketName string) (*NatsObjectStore, error) {
	store, err := createOrBindBucket(jetstreamContext, bucketName)
	if err != nil {
		return nil, err
	}

	return &NatsObjectStore{
		bucket: bucketName,
		store:  store,
	}, nil
}

func createOrBindBucket(
	jetstreamContext nats.JetStreamContext,
	bucketName string,
) (nats.ObjectStore, error) {
	store, err := jetstreamContext.CreateObjectStore(&nats.ObjectStoreConfig{
		Bucket:      bucketName,
		Description: fmt.Sprintf("Text payloads for the %s bucket.", bucketName),
		TTL:         0,
		MaxBytes:    0,
		Storage:     nats.FileStorage,
		Replicas:    1,
		Placement:   nil,
		Metadata:    nil,
		Compression: false,
	})
	if err == nil {
		return store, nil
	}

	if !errors.Is(err, jetstream.ErrBucketExists) {
		return nil, fmt.Errorf("failed to create object store bucket '%s': %w", bucketName, err)
	}

	store, err = jetstreamContext.ObjectStore(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to bind to existing object store bucket '%s': %w", bucketName, err)
	}

	return store, nil
}

// Download retrieves an object from the bucket.
func (n *NatsObjectStore) Download(_ context.Context, key string) ([]byte, error) {
	obj, err := n.store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get object '%s' from bucket '%s': %w", key, n.bucket, err)
	}

	data, readErr := io.ReadAll(obj)
	closeErr := obj.Close()

	if readErr != nil {
		return nil, fmt.Errorf("failed to read object '%s': %w", key, readErr)
	}

	if closeErr != nil {
		return data, fmt.Errorf("failed to close object '%s': %w", key, closeErr)
	}

	return data, nil
}

// Upload saves an object to the bucket.
func (n *NatsObjectStore) Upload(_ context.Context, key string, data []byte) error {
	_, err := n.store.Put(&nats.ObjectMeta{
		Name:        key,
		Description: "",
		Headers:     nil,
		Metadata:    nil,
		Opts:        nil,
	}, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to put object '%s' to bucket '%s': %w", key, n.bucket, err)
	}

	return nil
}

// Delete removes an object from the bucket. The worker uses this to drop the
// raw text once the normalized payload has been published.
func (n *NatsObjectStore) Delete(_ context.Context, key string) error {
	err := n.store.Delete(key)
	if err != nil {
		return fmt.Errorf("failed to delete object '%s' from bucket '%s': %w", key, n.bucket, err)
	}

	return nil
}
