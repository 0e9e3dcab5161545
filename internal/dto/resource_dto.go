package dto

// OpenResourceRequest asks the host OS to open a source file with its
// default application. The path is used exactly as received; any
// transformation risks resolving to the wrong file.
type OpenResourceRequest struct {
	Path string `json:"path" validate:"required,abspath"`
}
