package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolveUploadedBytesWinOverURL(t *testing.T) {
	fetcher := NewImageFetcher(5 * time.Second)
	uploaded := []byte{0x89, 0x50, 0x4e, 0x47}

	// The server must never be hit when bytes are present
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote URL fetched although uploaded bytes were supplied")
	}))
	defer server.Close()

	data, mime, err := fetcher.Resolve(context.Background(), uploaded, "image/png", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, uploaded) || mime != "image/png" {
		t.Errorf("got (%v, %q)", data, mime)
	}
}

func TestResolveUploadedBytesDefaultMime(t *testing.T) {
	fetcher := NewImageFetcher(5 * time.Second)

	_, mime, err := fetcher.Resolve(context.Background(), []byte{1, 2, 3}, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg default, got %q", mime)
	}
}

func TestResolveRemoteURL(t *testing.T) {
	payload := []byte("fake-image-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewImageFetcher(5 * time.Second)
	data, mime, err := fetcher.Resolve(context.Background(), nil, "", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("fetched bytes differ from served bytes")
	}
	if mime != "image/webp" {
		t.Errorf("expected image/webp, got %q", mime)
	}
}

func TestResolveRemoteURLMissingContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress the default
		w.Write([]byte("img"))
	}))
	defer server.Close()

	fetcher := NewImageFetcher(5 * time.Second)
	_, mime, err := fetcher.Resolve(context.Background(), nil, "", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg fallback, got %q", mime)
	}
}

func TestResolveRemoteURLErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewImageFetcher(5 * time.Second)
	_, _, err := fetcher.Resolve(context.Background(), nil, "", server.URL)

	var fetchErr *ImageFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected ImageFetchError, got %v", err)
	}
}

func TestResolveRemoteURLUnreachable(t *testing.T) {
	fetcher := NewImageFetcher(2 * time.Second)
	_, _, err := fetcher.Resolve(context.Background(), nil, "", "http://127.0.0.1:1/image.jpg")

	var fetchErr *ImageFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected ImageFetchError, got %v", err)
	}
}

func TestResolveRemoteURLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	fetcher := NewImageFetcher(100 * time.Millisecond)
	start := time.Now()
	_, _, err := fetcher.Resolve(context.Background(), nil, "", server.URL)

	var fetchErr *ImageFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected ImageFetchError, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("fetch did not respect the configured timeout")
	}
}

func TestResolveNoImage(t *testing.T) {
	fetcher := NewImageFetcher(5 * time.Second)
	data, mime, err := fetcher.Resolve(context.Background(), nil, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil || mime != "" {
		t.Errorf("expected absent image, got (%v, %q)", data, mime)
	}
}
