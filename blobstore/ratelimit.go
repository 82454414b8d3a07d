package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedStore wraps a BlobStore and caps blob read throughput.
// Writes, deletes and listings pass through unthrottled.
type RateLimitedStore struct {
	BlobStore
	limiter *rate.Limiter
}

// NewRateLimitedStore limits reads from inner to bytesPerSec.
// A non-positive limit returns inner unchanged.
func NewRateLimitedStore(inner BlobStore, bytesPerSec int) BlobStore {
	if bytesPerSec <= 0 {
		return inner
	}
	return &RateLimitedStore{
		BlobStore: inner,
		limiter:   rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

// Open opens a blob whose reads wait for limiter tokens.
// The returned blob never exposes Mappable, so every byte is accounted for.
func (s *RateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.BlobStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &limitedBlob{inner: b, limiter: s.limiter}, nil
}

type limitedBlob struct {
	inner   Blob
	limiter *rate.Limiter
}

// ReadAt reads in chunks no larger than the limiter burst.
func (b *limitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	burst := b.limiter.Burst()
	total := 0
	for total < len(p) {
		chunk := min(len(p)-total, burst)
		if err := b.limiter.WaitN(ctx, chunk); err != nil {
			return total, err
		}
		n, err := b.inner.ReadAt(ctx, p[total:total+chunk], off+int64(total))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (b *limitedBlob) Close() error {
	return b.inner.Close()
}

func (b *limitedBlob) Size() int64 {
	return b.inner.Size()
}
