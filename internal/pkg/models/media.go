package models

// UploadedAsset describes a file stored on the asset host
type UploadedAsset struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	Format       string `json:"format,omitempty"`
	Bytes        int    `json:"bytes,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
}
