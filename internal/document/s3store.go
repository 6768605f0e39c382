package document

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used by S3Store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// S3Store serves <prefix><name>.yaml objects from a bucket.
//
// Example:
//
//	client := s3.New(s3.Options{Region: "eu-west-1", Credentials: creds})
//	store := document.NewS3Store(client, "my-bucket", "pages/")
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store creates a store over bucket. A non-empty prefix is treated as a
// directory.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// ParseS3URL splits "s3://bucket/prefix" into its parts.
func ParseS3URL(location string) (bucket, prefix string, ok bool) {
	rest, found := strings.CutPrefix(location, "s3://")
	if !found {
		return "", "", false
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	return bucket, prefix, bucket != ""
}

func (s *S3Store) key(name string) string {
	return s.prefix + name + Ext
}

// Open implements Store.
func (s *S3Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if stderrors.As(err, &nsk) {
			return nil, &fs.PathError{Op: "open", Path: "s3://" + s.bucket + "/" + s.key(name), Err: fs.ErrNotExist}
		}
		return nil, err
	}
	return out.Body, nil
}

// List implements Store. Objects below nested prefixes are skipped.
func (s *S3Store) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			rel := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			if !strings.HasSuffix(rel, Ext) {
				continue
			}
			if name := strings.TrimSuffix(rel, Ext); ValidName(name) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
