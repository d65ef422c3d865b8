package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	file := []byte("jpeg bytes")

	t.Run("success 200 OK", func(t *testing.T) {
		var gotBody []byte
		var gotCT, gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := upload(context.Background(), ts.Client(), ts.URL+"/b/k?X-Amz-Signature=abc", file, "image/jpeg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut {
			t.Fatalf("method = %q, want PUT", gotMethod)
		}
		if gotCT != "image/jpeg" {
			t.Fatalf("Content-Type = %q", gotCT)
		}
		if !bytes.Equal(gotBody, file) {
			t.Fatalf("body = %q", gotBody)
		}
	})

	t.Run("non-200 -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		err := upload(context.Background(), ts.Client(), ts.URL, file, "image/jpeg")
		if err == nil || !strings.Contains(err.Error(), "upload failed: 403") {
			t.Fatalf("want 403 error, got %v", err)
		}
		if !strings.Contains(err.Error(), "SignatureDoesNotMatch") {
			t.Fatalf("body not included: %v", err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		if err := upload(context.Background(), http.DefaultClient, ts.URL, file, "x"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := upload(ctx, ts.Client(), ts.URL, file, "x"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
