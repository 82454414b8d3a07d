package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/closestpair/blobstore"
	minioblob "github.com/hupe1980/closestpair/blobstore/minio"
	s3blob "github.com/hupe1980/closestpair/blobstore/s3"
)

// openStore builds the blob store selected by --store.
func (a *app) openStore(ctx context.Context) (blobstore.BlobStore, error) {
	var (
		store blobstore.BlobStore
		err   error
	)

	switch kind := a.conf.GetString("store"); kind {
	case "local":
		store = blobstore.NewLocalStore(a.conf.GetString("root"))

	case "s3":
		bucket := a.conf.GetString("bucket")
		if bucket == "" {
			return nil, errors.New("--bucket is required for the s3 store")
		}
		opts := []s3blob.Option{s3blob.WithPrefix(a.conf.GetString("prefix"))}
		if region := a.conf.GetString("region"); region != "" {
			opts = append(opts, s3blob.WithRegion(region))
		}
		if endpoint := a.conf.GetString("endpoint"); endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(endpoint))
		}
		store, err = s3blob.New(ctx, bucket, opts...)

	case "minio":
		cfg := minioblob.Config{
			Endpoint:  a.conf.GetString("endpoint"),
			AccessKey: a.conf.GetString("access-key"),
			SecretKey: a.conf.GetString("secret-key"),
			Region:    a.conf.GetString("region"),
			Secure:    a.conf.GetBool("secure"),
			Bucket:    a.conf.GetString("bucket"),
			Prefix:    a.conf.GetString("prefix"),
		}
		if cfg.Endpoint == "" || cfg.Bucket == "" {
			return nil, errors.New("--endpoint and --bucket are required for the minio store")
		}
		store, err = minioblob.Connect(cfg)

	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
	if err != nil {
		return nil, err
	}

	return blobstore.NewRateLimitedStore(store, a.conf.GetInt("read-limit")), nil
}
