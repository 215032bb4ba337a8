package entity

// RawUpload is one submitted file: opaque bytes plus the name used to select
// the parsing strategy. It exists only for the duration of one request.
type RawUpload struct {
	FileName string
	Content  []byte
}
