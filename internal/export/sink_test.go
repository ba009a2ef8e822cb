package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// -- DirSink tests --

func TestDirSink_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewDirSink(dir)

	location, err := sink.Write(context.Background(), "groups-2025-01-01.csv", "text/csv", []byte("a,b"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "groups-2025-01-01.csv"), location)
	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(data))
}

func TestDirSink_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	sink := NewDirSink(dir)

	location, err := sink.Write(context.Background(), "../../escape.csv", "text/csv", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), location)
}

func TestDirSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirSink(t.TempDir()).Write(ctx, "a.csv", "text/csv", nil)

	assert.ErrorIs(t, err, context.Canceled)
}

// -- S3Sink tests --

type mockPutter struct {
	mock.Mock
}

func (m *mockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func TestS3Sink_Write(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return *in.Bucket == "fieldops-exports" &&
			*in.Key == "reports/loans-2025-01-01.json" &&
			*in.ContentType == "application/json" &&
			string(body) == "[]"
	})).Return(&s3.PutObjectOutput{}, nil)

	sink := NewS3Sink(putter, "fieldops-exports", "reports")
	location, err := sink.Write(context.Background(), "loans-2025-01-01.json", "application/json", []byte("[]"))

	require.NoError(t, err)
	assert.Equal(t, "s3://fieldops-exports/reports/loans-2025-01-01.json", location)
	putter.AssertExpectations(t)
}

func TestS3Sink_WriteError(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := NewS3Sink(putter, "bucket", "").Write(context.Background(), "a.csv", "text/csv", []byte("a"))

	assert.ErrorContains(t, err, "put s3://bucket/a.csv: access denied")
}
