// Package httpapi exposes the Petstore v2 HTTP surface over the bounded
// context services.
package httpapi

// Acknowledgment is the minimal result returned by operations that do not
// return the mutated entity itself.
type Acknowledgment struct {
	Message string `json:"message"`
}

// ApiResponse is the generic result envelope used by the image-upload
// acknowledgment.
type ApiResponse struct {
	Code    int32  `json:"code,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}
