package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsConfigured(t *testing.T) {
	assert.False(t, Config{}.IsConfigured())
	assert.False(t, Config{Bucket: "b"}.IsConfigured())
	assert.True(t, Config{Bucket: "b", Endpoint: "http://minio:9000"}.IsConfigured())
}

func TestNew_PicksImplementation(t *testing.T) {
	assert.IsType(t, NopStore{}, New(Config{}))
	assert.IsType(t, &S3Store{}, New(Config{Bucket: "b", Endpoint: "http://x"}))
}

func TestNopStore(t *testing.T) {
	_, _, err := NopStore{}.Put(context.Background(), KindImage, []byte("x"), "")
	assert.ErrorIs(t, err, common.ErrNotConfigured)
	_, err = NopStore{}.URL(context.Background(), "k")
	assert.ErrorIs(t, err, common.ErrNotConfigured)
}

func TestNewObjectKey(t *testing.T) {
	k := newObjectKey(KindAudio, time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(k, "community/audio/2025/04/09/"), k)
}

func TestNewS3Store_Defaults(t *testing.T) {
	s := NewS3Store(Config{Bucket: "b", Endpoint: "e"}, nil)
	assert.Equal(t, DefaultURLExpiry, s.cfg.URLExpiry)
	assert.Same(t, http.DefaultClient, s.http)
}

// Presigning is offline, so a real client pointed at httptest exercises the
// whole path.
func TestS3Store_PutAgainstFakeBucket(t *testing.T) {
	var (
		mu      sync.Mutex
		gotPath string
		gotBody string
		gotSig  string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.Path
		gotSig = r.URL.Query().Get("X-Amz-Signature")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s := NewS3Store(Config{
		Region:    "us-east-1",
		Endpoint:  ts.URL,
		Bucket:    "driverhelper",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		PathStyle: true,
	}, ts.Client())

	key, url, err := s.Put(context.Background(), KindImage, []byte("pixels"), "image/png")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/driverhelper/"+key, gotPath)
	assert.Equal(t, "pixels", gotBody)
	assert.NotEmpty(t, gotSig)
	assert.True(t, strings.HasPrefix(url, ts.URL+"/driverhelper/"+key), url)
	assert.Contains(t, url, "X-Amz-Expires=604800")
}

func TestS3Store_UsesConfigOptions(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew
		presignPutObject, presignGetObject = origPut, origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-west-1", lo.Region)
		assert.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}
	var endpoint string
	var pathStyle bool
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		endpoint, pathStyle = *o.BaseEndpoint, o.UsePathStyle
		return &s3.Client{}
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "bucket", *in.Bucket)
		assert.Equal(t, "some/key", *in.Key)
		return &v4.PresignedHTTPRequest{URL: "https://signed/get"}, nil
	}

	s := NewS3Store(Config{Region: "eu-west-1", Endpoint: "http://minio:9000", Bucket: "bucket", AccessKey: "a", SecretKey: "b", PathStyle: true}, nil)
	url, err := s.URL(context.Background(), "some/key")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/get", url)
	assert.Equal(t, "http://minio:9000", endpoint)
	assert.True(t, pathStyle)
}

func TestS3Store_Errors(t *testing.T) {
	origLoad, origPut := loadDefaultAWSConfig, presignPutObject
	t.Cleanup(func() { loadDefaultAWSConfig, presignPutObject = origLoad, origPut })

	s := NewS3Store(Config{Region: "us-east-1", Endpoint: "http://x", Bucket: "b"}, nil)

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, _, err := s.Put(context.Background(), KindImage, nil, "")
	assert.EqualError(t, err, "load-fail")
	_, err = s.URL(context.Background(), "k")
	assert.EqualError(t, err, "load-fail")

	loadDefaultAWSConfig = origLoad
	presignPutObject = func(*s3.PresignClient, context.Context, *s3.PutObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	}
	_, _, err = s.Put(context.Background(), KindImage, nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presign put: sign-fail")
}
