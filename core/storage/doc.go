// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client, which supports both AWS S3 and self-hosted
// MinIO instances. The server only needs to know whether its bucket is
// reachable, so the Client interface is limited to BucketExists and can be
// mocked in tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.CheckBucket(ctx, client, "assets")
package storage
