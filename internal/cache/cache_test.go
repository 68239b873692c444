package cache

import (
	"testing"
	"time"
)

func TestKeyIsStableAndClassScoped(t *testing.T) {
	k1 := Key(ClassSentiment, "hello world")
	k2 := Key(ClassSentiment, "hello world")
	if k1 != k2 {
		t.Fatalf("expected stable key, got %q vs %q", k1, k2)
	}

	k3 := Key(ClassTranslation, "hello world")
	if k1 == k3 {
		t.Fatal("expected different classes to produce different keys for the same text")
	}
}

func TestNilClientDegradesToMiss(t *testing.T) {
	c := New(nil, DefaultTTLs(24, 24, 24, 7), nil)

	var dst string
	ok, err := c.Get(t.Context(), ClassSentiment, "anything", &dst)
	if err != nil || ok {
		t.Fatalf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	// Set on a nil-client cache must not panic.
	c.Set(t.Context(), ClassSentiment, "anything", "value")
}

func TestNilCacheReceiverDegradesToMiss(t *testing.T) {
	var c *Cache

	var dst string
	ok, err := c.Get(t.Context(), ClassSentiment, "anything", &dst)
	if err != nil || ok {
		t.Fatalf("expected a clean miss from a nil *Cache, got ok=%v err=%v", ok, err)
	}
	c.Set(t.Context(), ClassSentiment, "anything", "value")
}

func TestDefaultTTLsMapsEveryClass(t *testing.T) {
	ttls := DefaultTTLs(24, 48, 12, 7)

	if ttls[ClassSentiment] != 24*time.Hour {
		t.Errorf("unexpected sentiment TTL: %v", ttls[ClassSentiment])
	}
	if ttls[ClassTranslation] != 48*time.Hour {
		t.Errorf("unexpected translation TTL: %v", ttls[ClassTranslation])
	}
	if ttls[ClassClassification] != 12*time.Hour {
		t.Errorf("unexpected classification TTL: %v", ttls[ClassClassification])
	}
	if ttls[ClassScheme] != 7*24*time.Hour {
		t.Errorf("unexpected scheme TTL: %v", ttls[ClassScheme])
	}
}
