// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object store. This package uses the official
// MinIO Go client, which also works against Ceph, SeaweedFS and Garage.
//
// # Basic Usage
//
//	store, err := minioblob.Connect(minioblob.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "points",
//	    Prefix:    "sets/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pts, err := pointset.Load(ctx, store, "cloud.cp3d")
//
// An existing *minio.Client can be wrapped with NewStore instead.
package minio
