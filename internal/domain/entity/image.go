package entity

import "time"

// Image representa los metadatos de una imagen de producto. Los bytes viven en
// el object store bajo S3Key; aquí solo la referencia. Inmutable salvo borrado.
// El dueño efectivo es el dueño del Product padre.
type Image struct {
	ID        string
	ProductID string
	FileName  string
	S3Key     string
	CreatedAt time.Time
}
