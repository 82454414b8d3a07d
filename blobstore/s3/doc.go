// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("pointsets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	pts, err := pointset.Load(ctx, store, "cloud.cp3d")
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads for large point sets
//   - Automatic pagination for listing
//   - Custom endpoints for S3-compatible services
package s3
