package dataset

import (
	"sync"
	"testing"

	"demodash/internal/errors"
)

func TestLoader_MemoizesSnapshot(t *testing.T) {
	path := writeTempCSV(t, "region,life_expectancy_total\nGlobal,73.3\n")
	loader := NewLoader(path)

	if loader.Loaded() {
		t.Error("Expected loader to start empty")
	}

	first, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := loader.Load()
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected memoized snapshot, got IDs %s and %s", first.ID, second.ID)
	}
	if !loader.Loaded() {
		t.Error("Expected loader to report loaded")
	}
}

func TestLoader_ReloadProducesNewSnapshot(t *testing.T) {
	path := writeTempCSV(t, "region,life_expectancy_total\nGlobal,73.3\n")
	loader := NewLoader(path)

	first, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := loader.Reload()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("Expected reload to produce a fresh snapshot ID")
	}
}

func TestLoader_ConcurrentLoadsShareSnapshot(t *testing.T) {
	path := writeTempCSV(t, "region,life_expectancy_total\nGlobal,73.3\n")
	loader := NewLoader(path)

	const workers = 16
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := loader.Load()
			if err != nil {
				t.Errorf("Concurrent load failed: %v", err)
				return
			}
			ids[i] = snap.ID
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("Expected a single snapshot, got %s and %s", ids[0], ids[i])
		}
	}
}

func TestLoader_ValidationFailureIsCodedNotCached(t *testing.T) {
	path := writeTempCSV(t, "country_name,years_lived\nSpain,83.3\n")
	loader := NewLoader(path)

	_, err := loader.Load()
	if err == nil {
		t.Fatal("Expected load of unrecognized columns to fail")
	}
	if errors.GetCode(err) != errors.CodeColumnMissing {
		t.Errorf("Expected code %s, got %s", errors.CodeColumnMissing, errors.GetCode(err))
	}
	if loader.Loaded() {
		t.Error("Expected failed load not to be cached")
	}
}
