// Package s3 implementa el puerto BlobStore sobre AWS S3 o un servicio
// compatible (MinIO, LocalStack) vía BaseEndpoint.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var _ ports.BlobStore = (*BlobStore)(nil)

// BlobStore adaptador S3 del puerto ports.BlobStore.
type BlobStore struct {
	client *s3.Client
	bucket string
	log    *logger.Logger
}

// NewBlobStore construye el cliente S3. Con Endpoint vacío usa AWS real y la
// cadena de credenciales por defecto; con Endpoint definido (MinIO) usa
// credenciales estáticas y, si se pide, path-style.
func NewBlobStore(ctx context.Context, cfg config.S3Config, log *logger.Logger) (*BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &BlobStore{client: client, bucket: cfg.Bucket, log: log}, nil
}

// Put sube un objeto bajo la key indicada.
func (b *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	b.log.Debug().Str("bucket", b.bucket).Str("key", key).Int("bytes", len(data)).Msg("objeto subido a S3")
	return nil
}

// Delete borra un objeto. S3 responde OK aunque la key no exista, así que la
// operación es idempotente sin trabajo extra.
func (b *BlobStore) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	b.log.Debug().Str("bucket", b.bucket).Str("key", key).Msg("objeto borrado de S3")
	return nil
}

// Exists verifica si la key existe vía HeadObject.
func (b *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head object %q: %w", key, err)
	}
	return true, nil
}
