package pointset

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hupe1980/closestpair"
	"github.com/hupe1980/closestpair/blobstore"
	"github.com/hupe1980/closestpair/point"
	"golang.org/x/sync/errgroup"
)

// Extension marks blobs stored in the binary format.
const Extension = ".cp3d"

// DefaultConcurrency bounds the number of blobs LoadAll reads at once.
const DefaultConcurrency = 8

type options struct {
	logger      *closestpair.Logger
	concurrency int
	compression Compression
}

// Option configures Load, Save and LoadAll.
type Option func(*options)

// WithLogger logs every load and save. Pass nil to disable logging.
func WithLogger(logger *closestpair.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = closestpair.NoopLogger()
		}
		o.logger = logger
	}
}

// WithConcurrency bounds the number of concurrent reads in LoadAll.
// Values below 1 select DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultConcurrency
		}
		o.concurrency = n
	}
}

// WithCompression selects the payload compression used by Save for
// binary blobs. Text blobs ignore it.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:      closestpair.NoopLogger(),
		concurrency: DefaultConcurrency,
		compression: CompressionLZ4,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// IsBinary reports whether name is stored in the binary format.
func IsBinary(name string) bool {
	return strings.EqualFold(path.Ext(name), Extension)
}

// Load reads a point set from store. The format is chosen by extension.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) ([]point.Point, error) {
	o := applyOptions(opts)

	pts, err := load(ctx, store, name)
	o.logger.LogLoad(ctx, name, len(pts), err)
	return pts, err
}

func load(ctx context.Context, store blobstore.BlobStore, name string) ([]point.Point, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("pointset: open %s: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	// Mapped data is only valid until Close; both decoders copy out of it.
	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("pointset: read %s: %w", name, err)
	}

	var pts []point.Point
	if IsBinary(name) {
		pts, err = Decode(data)
	} else {
		pts, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("pointset: decode %s: %w", name, err)
	}
	return pts, nil
}

// Save writes pts to store, in the binary format for ".cp3d" names and as
// text otherwise.
func Save(ctx context.Context, store blobstore.BlobStore, name string, pts []point.Point, opts ...Option) error {
	o := applyOptions(opts)

	var (
		data []byte
		err  error
	)
	if IsBinary(name) {
		data, err = Encode(pts, o.compression)
	} else {
		var buf bytes.Buffer
		err = WriteText(&buf, pts)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("pointset: encode %s: %w", name, err)
	}

	if err := store.Put(ctx, name, data); err != nil {
		o.logger.ErrorContext(ctx, "save failed", "source", name, "error", err)
		return fmt.Errorf("pointset: put %s: %w", name, err)
	}
	o.logger.InfoContext(ctx, "point set saved",
		"source", name,
		"count", len(pts),
		"bytes", len(data),
	)
	return nil
}

// LoadAll loads several point sets concurrently. Results are returned in the
// order of names. The first error cancels the remaining loads.
func LoadAll(ctx context.Context, store blobstore.BlobStore, names []string, opts ...Option) ([][]point.Point, error) {
	o := applyOptions(opts)
	sets := make([][]point.Point, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, name := range names {
		g.Go(func() error {
			pts, err := load(gctx, store, name)
			o.logger.LogLoad(gctx, name, len(pts), err)
			if err != nil {
				return err
			}
			sets[i] = pts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
