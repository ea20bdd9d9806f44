package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"paperqa-backend/internal/shared/storage/object"
)

type fakeClient struct {
	objects map[string][]byte
	getErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{objects: map[string][]byte{}}
}

func (f *fakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeClient) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "uploads/file.pdf", want: "uploads/file.pdf"},
		{name: "simple prefix", prefix: "paperqa", key: "uploads/file.pdf", want: "paperqa/uploads/file.pdf"},
		{name: "prefix trailing slash", prefix: "paperqa/", key: "uploads/file.pdf", want: "paperqa/uploads/file.pdf"},
		{name: "prefix and key slashes", prefix: "/paperqa/", key: "/uploads/file.pdf", want: "paperqa/uploads/file.pdf"},
		{name: "empty key", prefix: "paperqa", key: "", want: "paperqa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestApplyEncryption(t *testing.T) {
	t.Parallel()

	withKMS := &Store{kmsKeyID: "key-1"}
	in := &s3.PutObjectInput{}
	withKMS.applyEncryption(in)
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || in.SSEKMSKeyId == nil || *in.SSEKMSKeyId != "key-1" {
		t.Fatalf("expected kms encryption, got %+v", in)
	}

	plain := &Store{}
	in = &s3.PutObjectInput{}
	plain.applyEncryption(in)
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %q", in.ServerSideEncryption)
	}
}

func TestStoreSaveOpenDelete(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	store := &Store{client: client, bucket: "papers", prefix: "paperqa"}
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "paper.pdf", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len("%PDF-1.4 body")) || mimeType != "application/pdf" {
		t.Fatalf("unexpected save result size=%d mime=%q", size, mimeType)
	}
	if _, ok := client.objects["paperqa/"+key]; !ok {
		t.Fatalf("expected object under prefixed key, have %v", client.objects)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 body" {
		t.Fatalf("unexpected body %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Open(ctx, key); !errors.Is(err, object.ErrNotStored) {
		t.Fatalf("expected ErrNotStored after delete, got %v", err)
	}
}

func TestStoreOpenErrors(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.getErr = errors.New("access denied")
	store := &Store{client: client, bucket: "papers"}

	_, err := store.Open(context.Background(), "uploads/x.pdf")
	if err == nil || errors.Is(err, object.ErrNotStored) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
	if !strings.Contains(err.Error(), "bucket=papers key=uploads/x.pdf") {
		t.Fatalf("expected bucket and key in error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Open(ctx, "uploads/x.pdf"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
