// Package publish uploads an exported site to an S3 bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"elenavasquez.com/internal/views"
)

// DefaultConcurrency bounds simultaneous uploads when none is configured
const DefaultConcurrency = 8

// ErrNoBucket is returned when publishing without a bucket name
var ErrNoBucket = errors.New("no bucket configured")

// ObjectPutter is the part of the S3 API the publisher needs
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Object describes one uploaded file
type Object struct {
	Key          string
	ContentType  string
	CacheControl string
	Size         int64
}

// Report summarizes a publish run
type Report struct {
	Objects []Object
	Bytes   int64
	DryRun  bool
}

// Publisher uploads a directory tree to a bucket
type Publisher struct {
	Client      ObjectPutter
	Bucket      string
	Prefix      string
	Concurrency int
	DryRun      bool
	Logger      *zap.Logger
}

// NewS3Client builds an S3 client from the default credential chain.
// endpoint and pathStyle target S3-compatible stores.
func NewS3Client(ctx context.Context, region, endpoint string, pathStyle bool) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = pathStyle
	}), nil
}

// Publish uploads every file below dir. Keys are the slash-separated paths
// relative to dir, joined under Prefix.
func (p *Publisher) Publish(ctx context.Context, dir string) (Report, error) {
	report := Report{DryRun: p.DryRun}
	if p.Bucket == "" {
		return report, ErrNoBucket
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := collect(dir)
	if err != nil {
		return report, err
	}

	report.Objects = make([]Object, len(files))
	for i, rel := range files {
		local := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := os.Stat(local)
		if err != nil {
			return report, fmt.Errorf("stat %s: %w", rel, err)
		}
		contentType, err := ContentType(local)
		if err != nil {
			return report, err
		}
		report.Objects[i] = Object{
			Key:          ObjectKey(p.Prefix, rel),
			ContentType:  contentType,
			CacheControl: CacheControl(rel),
			Size:         info.Size(),
		}
		report.Bytes += info.Size()
	}

	if p.DryRun {
		for _, obj := range report.Objects {
			logger.Info("would upload", zap.String("key", obj.Key), zap.String("content_type", obj.ContentType))
		}
		return report, nil
	}
	if p.Client == nil {
		return report, errors.New("no s3 client configured")
	}

	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range files {
		local := filepath.Join(dir, filepath.FromSlash(files[i]))
		obj := report.Objects[i]
		g.Go(func() error {
			return p.upload(gctx, local, obj, logger)
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	logger.Info("publish complete",
		zap.String("bucket", p.Bucket),
		zap.Int("objects", len(report.Objects)),
		zap.Int64("bytes", report.Bytes),
	)
	return report, nil
}

func (p *Publisher) upload(ctx context.Context, local string, obj Object, logger *zap.Logger) error {
	f, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("open %s: %w", local, err)
	}
	defer f.Close()

	_, err = p.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.Bucket),
		Key:           aws.String(obj.Key),
		Body:          f,
		ContentLength: aws.Int64(obj.Size),
		ContentType:   aws.String(obj.ContentType),
		CacheControl:  aws.String(obj.CacheControl),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", obj.Key, err)
	}
	logger.Debug("uploaded", zap.String("key", obj.Key), zap.Int64("size", obj.Size))
	return nil
}

func collect(dir string) ([]string, error) {
	var files []string
	err := fs.WalkDir(os.DirFS(dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// ObjectKey joins a relative file path under prefix
func ObjectKey(prefix, rel string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

var textTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".txt":  "text/plain; charset=utf-8",
	".xml":  "application/xml",
}

// ContentType picks the Content-Type for a local file. Text assets are typed
// by extension since sniffing cannot tell CSS from plain text; everything
// else is sniffed.
func ContentType(local string) (string, error) {
	if t, ok := textTypes[strings.ToLower(filepath.Ext(local))]; ok {
		return t, nil
	}
	mt, err := mimetype.DetectFile(local)
	if err != nil {
		return "", fmt.Errorf("detect content type of %s: %w", local, err)
	}
	return mt.String(), nil
}

// CacheControl keeps documents fresh and caches assets the same way the
// server does
func CacheControl(rel string) string {
	if strings.HasPrefix(rel, "images/") {
		return views.ImageCacheControl
	}
	switch strings.ToLower(path.Ext(rel)) {
	case ".html", ".json":
		return "no-cache"
	default:
		return views.StaticCacheControl
	}
}
