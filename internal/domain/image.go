// Package domain – ImageRef
//
// This file models the optional image attached to a catalog submission as a
// closed set of states, so every stage of the ingestion pipeline can
// enumerate exactly the inputs it accepts:
//
//   - ImageAbsent:  the submission carried no file (valid; image is optional)
//   - ImagePending: raw upload bytes plus the client-supplied filename,
//     not yet written to the blob store
//   - ImageStored:  a blob already on disk, identified by its path
//
// The interface is sealed by the unexported marker method, so the three
// types above are the only possible values.
package domain

// ImageRef is the optional image reference flowing through ingestion.
type ImageRef interface {
	isImageRef()
}

// ImageAbsent marks a submission without an image.
type ImageAbsent struct{}

func (ImageAbsent) isImageRef() {}

// ImagePending holds an uploaded file that has not been saved yet.
type ImagePending struct {
	// Data is the raw file content as received from the client.
	Data []byte
	// Name is the client-supplied filename, used (sanitized) to derive
	// the stored blob name.
	Name string
}

func (ImagePending) isImageRef() {}

// ImageStored references a blob already written to the blob store.
type ImageStored struct {
	// Path is the on-disk path of the blob within the store root.
	Path string
}

func (ImageStored) isImageRef() {}
