// Package mmap provides read-only memory mapping of snapshot files.
//
// A matrix snapshot is written once and then only read, which makes it a
// good fit for mapping: the decoder walks the file front to back and the
// kernel pages data in on demand instead of the process buffering it.
//
// Mappings are read-only. Writing through the returned byte slice is
// undefined behavior on every supported platform.
package mmap
