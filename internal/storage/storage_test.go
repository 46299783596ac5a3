package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeImagePath(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	assert.Equal(t, "uploads/recipe/0f8fad5b-d9cb-469f-a165-70867728950e.jpg", RecipeImagePath(id, "myimage.jpg"))
	assert.Equal(t, "uploads/recipe/0f8fad5b-d9cb-469f-a165-70867728950e.png", RecipeImagePath(id, "dir/holiday.photo.png"))
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	s, err := NewLocalStorage(root, "/media/")
	require.NoError(t, err)
	assert.Equal(t, root, s.Root())

	key := "uploads/recipe/a.png"
	require.NoError(t, s.Save(ctx, key, strings.NewReader("first")))
	require.NoError(t, s.Save(ctx, key, strings.NewReader("second")))

	data, err := os.ReadFile(filepath.Join(root, "uploads", "recipe", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.Equal(t, "/media/uploads/recipe/a.png", s.URL(key))

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(root, "uploads", "recipe", "a.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, key), "deleting a missing key is not an error")
}

func TestLocalStorage_StaysInsideRoot(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(root, "media"), "/media")
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x")))
	_, err = os.Stat(filepath.Join(root, "media", "escape.txt"))
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Save(ctx, "", strings.NewReader("x")), ErrInvalidPath)
}

type fakeS3 struct {
	objects   map[string]string
	bucketErr error
	created   bool
	putErr    error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, _ := io.ReadAll(in.Body)
	f.objects[aws.ToString(in.Key)] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.bucketErr
}

func (f *fakeS3) CreateBucket(ctx context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = true
	return &s3.CreateBucketOutput{}, nil
}

func TestS3Storage(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{objects: map[string]string{}}

	s := NewS3StorageWithClient(client, S3Config{Bucket: "media", Endpoint: "http://minio:9000/"})
	require.NoError(t, s.Save(ctx, "uploads/recipe/a.png", strings.NewReader("img")))
	assert.Equal(t, "img", client.objects["uploads/recipe/a.png"])
	assert.Equal(t, "http://minio:9000/media/uploads/recipe/a.png", s.URL("uploads/recipe/a.png"))

	require.NoError(t, s.Delete(ctx, "uploads/recipe/a.png"))
	assert.Empty(t, client.objects)

	client.putErr = errors.New("boom")
	assert.Error(t, s.Save(ctx, "k", strings.NewReader("img")))
}

func TestS3Storage_PublicURL(t *testing.T) {
	direct := NewS3StorageWithClient(&fakeS3{}, S3Config{Bucket: "b", Region: "eu-west-1"})
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/k", direct.URL("k"))

	cdn := NewS3StorageWithClient(&fakeS3{}, S3Config{Bucket: "b", PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/k", cdn.URL("k"))
}

func TestS3Storage_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	existing := &fakeS3{}
	require.NoError(t, NewS3StorageWithClient(existing, S3Config{Bucket: "b"}).ensureBucket(ctx))
	assert.False(t, existing.created)

	missing := &fakeS3{bucketErr: errors.New("not found")}
	require.NoError(t, NewS3StorageWithClient(missing, S3Config{Bucket: "b"}).ensureBucket(ctx))
	assert.True(t, missing.created)
}
