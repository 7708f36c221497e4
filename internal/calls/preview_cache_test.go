package calls

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestPreviewCache_RoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	cache := NewPreviewCache(srv.Addr(), "")
	defer cache.Close()

	ctx := context.Background()

	if _, hit := cache.Get(ctx, "sarah"); hit {
		t.Fatalf("expected miss on empty cache")
	}

	cache.Set(ctx, "sarah", []byte("mp3-bytes"))
	audio, hit := cache.Get(ctx, "sarah")
	if !hit {
		t.Fatalf("expected hit after set")
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected cached payload %q", audio)
	}

	// Entries expire after a day.
	srv.FastForward(previewTTL + 1)
	if _, hit := cache.Get(ctx, "sarah"); hit {
		t.Fatalf("expected miss after TTL")
	}
}

func TestPreviewCache_NilCacheIsSafe(t *testing.T) {
	var cache *PreviewCache

	ctx := context.Background()
	if _, hit := cache.Get(ctx, "sarah"); hit {
		t.Fatalf("nil cache must always miss")
	}
	cache.Set(ctx, "sarah", []byte("mp3-bytes"))
	if err := cache.Close(); err != nil {
		t.Fatalf("nil cache close: %v", err)
	}
}

func TestPreviewCache_UsesVoiceScopedKeys(t *testing.T) {
	srv := miniredis.RunT(t)
	cache := NewPreviewCache(srv.Addr(), "")
	defer cache.Close()

	ctx := context.Background()
	cache.Set(ctx, "sarah", []byte("sarah-audio"))
	cache.Set(ctx, "alex", []byte("alex-audio"))

	audio, hit := cache.Get(ctx, "alex")
	if !hit || string(audio) != "alex-audio" {
		t.Fatalf("expected alex audio, got %q (hit=%v)", audio, hit)
	}
	if !srv.Exists("voice_preview:sarah") {
		t.Fatalf("expected voice_preview:sarah key in redis")
	}
}
