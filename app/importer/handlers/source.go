package handlers

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"io"
	"os"
	"strings"
)

const s3Scheme = "s3://"

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// parseS3URI 拆分 s3://bucket/key ，不是 s3 地址时 ok 为 false
func parseS3URI(source string) (bucket, key string, ok bool, err error) {
	if !strings.HasPrefix(source, s3Scheme) {
		return "", "", false, nil
	}

	bucket, key, found := strings.Cut(strings.TrimPrefix(source, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", true, fmt.Errorf("invalid s3 uri %q, expected s3://bucket/key", source)
	}

	return bucket, key, true, nil
}

func (a *App) openSource(ctx context.Context, source string) (io.ReadCloser, error) {
	bucket, key, isS3, err := parseS3URI(source)
	if err != nil {
		return nil, err
	}

	// 本地文件
	if !isS3 {
		return os.Open(source)
	}

	// 对象存储
	if a.s3 == nil {
		if a.s3, err = a.newS3Client(ctx); err != nil {
			return nil, fmt.Errorf("create s3 client: %w", err)
		}
	}

	out, err := a.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}

	return out.Body, nil
}

func (a *App) newS3Client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(a.cfg.S3.Region),
	}
	if a.cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.cfg.S3.AccessKey,
			a.cfg.S3.SecretKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if a.cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
