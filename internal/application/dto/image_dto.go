package dto

import "time"

// UploadImageInput entrada para subir una imagen (viene del multipart).
type UploadImageInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ImageResponse salida de metadatos de imagen.
type ImageResponse struct {
	ImageID      string    `json:"imageId"`
	ProductID    string    `json:"productId"`
	FileName     string    `json:"fileName"`
	DateCreated  time.Time `json:"dateCreated"`
	S3BucketPath string    `json:"s3BucketPath"`
}
