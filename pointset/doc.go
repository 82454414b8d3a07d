// Package pointset reads and writes 3D point sets.
//
// Two formats are supported. The binary format (extension ".cp3d") stores
// little-endian float64 triples behind a fixed header, optionally compressed
// with LZ4 or Zstandard and guarded by a CRC32 of the uncompressed payload:
//
//	offset size field
//	0      4    magic "CP3D"
//	4      1    version
//	5      1    compression
//	6      2    reserved
//	8      8    point count
//	16     8    raw payload size
//	24     8    stored payload size
//	32     4    CRC32 (IEEE) of the raw payload
//	36     ...  payload
//
// Any other extension is read as text: one point per line as three numbers
// separated by whitespace or commas. Blank lines and lines starting with '#'
// are ignored.
//
// Point sets are read from and written to a blobstore.BlobStore, so the same
// code serves local files, S3 and MinIO.
package pointset
