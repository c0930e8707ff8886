package redis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestEvalKeyDeterministic(t *testing.T) {
	// encoding/json sorts map keys, so identical inputs always serialize
	// identically regardless of insertion order
	first, _ := json.Marshal(map[string]interface{}{"pressure": 101325.0, "density": 1.225})
	second, _ := json.Marshal(map[string]interface{}{"density": 1.225, "pressure": 101325.0})

	if EvalKey("bernoulli", first) != EvalKey("bernoulli", second) {
		t.Errorf("Same inputs produced different cache keys")
	}
}

func TestEvalKeySeparatesFormulas(t *testing.T) {
	inputs := []byte(`{"n1":1,"n2":1.5}`)

	a := EvalKey("brewster", inputs)
	b := EvalKey("malus", inputs)
	if a == b {
		t.Errorf("Different formulas share a cache key: %s", a)
	}
	if !strings.HasPrefix(a, "eval:brewster:") {
		t.Errorf("Unexpected key shape: %s", a)
	}
}

func TestCachedResultNilClient(t *testing.T) {
	// Cache is optional wiring; a nil client must read as a miss
	if _, ok := CachedResult(context.Background(), nil, "eval:x:y"); ok {
		t.Errorf("Nil client reported a cache hit")
	}
}
