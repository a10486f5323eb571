package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"elenavasquez.com/internal/publish"
)

func newPublishCmd(a *app) *cobra.Command {
	var (
		dir         string
		bucket      string
		prefix      string
		region      string
		endpoint    string
		pathStyle   bool
		concurrency int
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload an exported site to S3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.cfg.Publish
			flags := cmd.Flags()
			if flags.Changed("bucket") {
				pc.Bucket = bucket
			}
			if flags.Changed("prefix") {
				pc.Prefix = prefix
			}
			if flags.Changed("region") {
				pc.Region = region
			}
			if flags.Changed("endpoint") {
				pc.Endpoint = endpoint
			}
			if flags.Changed("path-style") {
				pc.PathStyle = pathStyle
			}
			if flags.Changed("concurrency") {
				pc.Concurrency = concurrency
			}

			p := &publish.Publisher{
				Bucket:      pc.Bucket,
				Prefix:      pc.Prefix,
				Concurrency: pc.Concurrency,
				DryRun:      dryRun,
				Logger:      a.logger,
			}
			if !dryRun {
				client, err := publish.NewS3Client(cmd.Context(), pc.Region, pc.Endpoint, pc.PathStyle)
				if err != nil {
					return err
				}
				p.Client = client
			}

			report, err := p.Publish(cmd.Context(), dir)
			if err != nil {
				return err
			}
			verb := "Uploaded"
			if report.DryRun {
				verb = "Would upload"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d objects (%d bytes) to s3://%s\n", verb, len(report.Objects), report.Bytes, publish.ObjectKey(pc.Bucket, pc.Prefix))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "dist", "exported site directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "destination bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "custom S3-compatible endpoint")
	cmd.Flags().BoolVar(&pathStyle, "path-style", false, "use path-style bucket addressing")
	cmd.Flags().IntVar(&concurrency, "concurrency", publish.DefaultConcurrency, "parallel uploads")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list what would be uploaded without uploading")
	return cmd
}
