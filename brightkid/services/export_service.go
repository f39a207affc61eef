package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/semaphore"
)

const exportConcurrency = 4

// ExportService writes dashboard snapshots to Spaces as JSON so parents can
// share progress reports and the data survives outside the database.
type ExportService struct {
	client     *s3.Client
	bucket     string
	region     string
	dashboards *DashboardService
	sem        *semaphore.Weighted
	now        func() time.Time
}

func NewExportService(spacesKey, spacesSecret, region, bucket string, dashboards *DashboardService) (*ExportService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Spaces config: %w", err)
	}

	return &ExportService{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		region:     region,
		dashboards: dashboards,
		sem:        semaphore.NewWeighted(exportConcurrency),
		now:        time.Now,
	}, nil
}

// ExportSnapshot assembles the child's dashboard and uploads it as a dated
// JSON document. Returns the object key.
func (s *ExportService) ExportSnapshot(ctx context.Context, childID int64) (string, error) {
	dashboard, err := s.dashboards.Assemble(ctx, childID)
	if err != nil {
		return "", fmt.Errorf("failed to assemble snapshot for child %d: %w", childID, err)
	}

	payload, err := json.MarshalIndent(dashboard, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot for child %d: %w", childID, err)
	}

	key := fmt.Sprintf("snapshots/child_%d/%s.json", childID, s.now().UTC().Format("2006-01-02"))
	contentType := "application/json"
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(payload),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	slog.Info("Snapshot exported",
		slog.String("type", "sys"),
		slog.Int64("child_id", childID),
		slog.String("key", key),
		slog.Int("bytes", len(payload)))

	return key, nil
}

// ExportAll uploads snapshots for every given child with bounded
// concurrency. Failures are logged per child; the first error is returned
// after all uploads finish.
func (s *ExportService) ExportAll(ctx context.Context, childIDs []int64) error {
	var firstErr error
	errCh := make(chan error, len(childIDs))

	for _, childID := range childIDs {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return err
		}
		go func(id int64) {
			defer s.sem.Release(1)
			if _, err := s.ExportSnapshot(ctx, id); err != nil {
				slog.Error("Snapshot export failed",
					slog.String("type", "err"),
					slog.Int64("child_id", id),
					slog.Any("error", err))
				errCh <- err
				return
			}
			errCh <- nil
		}(childID)
	}

	for range childIDs {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
