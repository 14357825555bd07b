package storage

import (
	"context"
	"log"
	"mime/multipart"
)

// SimulatedUploader accepts any file without storing it. It stands in for
// R2 in local development and keeps the payment step working when no
// bucket is configured; upload failure is not a modeled outcome there.
type SimulatedUploader struct{}

func (SimulatedUploader) Upload(_ context.Context, key string, _ multipart.File, _ string) (string, error) {
	log.Printf("storage: simulated upload of %s", key)
	return "simulated://" + key, nil
}
