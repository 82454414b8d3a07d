// Package mmap maps point-set files read-only into memory for LocalStore.
//
//	v, err := mmap.Open("points.cp3d")
//	if err != nil { ... }
//	defer v.Close()
//
//	data, err := v.Bytes()
//
// Unix systems use mmap(2) with MADV_SEQUENTIAL; Windows uses
// CreateFileMapping/MapViewOfFile.
package mmap
