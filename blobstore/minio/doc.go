// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores.
//
// Use it for self-hosted deployments where the AWS SDK's credential and
// endpoint machinery is more than needed:
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "matrices", "snapshots/")
package minio
