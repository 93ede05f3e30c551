// Package io reads outline input and writes rendered documents.
//
// # Reading
//
// Input is read fully into memory, up to a caller-supplied ceiling.
// [ReadOutline] and [ImportOutline] never truncate: input longer than the
// ceiling fails with an INPUT_TOO_LARGE error. A missing file is reported as
// INPUT_NOT_FOUND; any other open or read failure as INPUT_UNREADABLE.
//
// [DefaultMaxBytes] is the ceiling used when none is configured.
//
// # Writing
//
// [WriteFileAtomic] writes the whole document to a uniquely named temporary
// file beside the destination and renames it into place. A failed run
// leaves either the previous file or nothing at the destination, never a
// partially written document.
package io
