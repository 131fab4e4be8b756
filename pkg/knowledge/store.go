package knowledge

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"ai-beautyadvisor-be/internal/entity"
)

//go:embed data/*.json
var dataFS embed.FS

// Store holds the four bundled reference datasets. It is loaded exactly once
// at process start and is read-only afterwards, so it can be shared across
// goroutines without locking. Refreshing the data requires a restart.
type Store struct {
	Regional  map[string]entity.RegionalIngredient
	Cosmetic  map[string]entity.CosmeticIngredient
	Concerns  map[string]entity.Concern
	HairTypes map[string]entity.HairType

	// Sorted key slices for deterministic iteration. Map iteration order is
	// random in Go and the assembled context must be byte-stable per input.
	RegionalKeys []string
	CosmeticKeys []string
	ConcernKeys  []string
	HairLabels   []string
}

// Load parses the embedded reference data. Any parse failure is returned as
// an error; the caller is expected to treat it as fatal since the retrieval
// engine cannot operate without the datasets.
func Load() (*Store, error) {
	s := &Store{}

	if err := loadDataset(dataFS, "data/regional_ingredients.json", &s.Regional); err != nil {
		return nil, err
	}
	if err := loadDataset(dataFS, "data/cosmetic_ingredients.json", &s.Cosmetic); err != nil {
		return nil, err
	}
	if err := loadDataset(dataFS, "data/concerns.json", &s.Concerns); err != nil {
		return nil, err
	}
	if err := loadDataset(dataFS, "data/hair_types.json", &s.HairTypes); err != nil {
		return nil, err
	}

	// Backfill internal keys from the map keys and freeze iteration order.
	for k, v := range s.Regional {
		v.Key = k
		s.Regional[k] = v
		s.RegionalKeys = append(s.RegionalKeys, k)
	}
	for k, v := range s.Cosmetic {
		v.Key = k
		s.Cosmetic[k] = v
		s.CosmeticKeys = append(s.CosmeticKeys, k)
	}
	for k, v := range s.Concerns {
		v.Key = k
		s.Concerns[k] = v
		s.ConcernKeys = append(s.ConcernKeys, k)
	}
	for k, v := range s.HairTypes {
		v.Label = k
		s.HairTypes[k] = v
		s.HairLabels = append(s.HairLabels, k)
	}
	sort.Strings(s.RegionalKeys)
	sort.Strings(s.CosmeticKeys)
	sort.Strings(s.ConcernKeys)
	sort.Strings(s.HairLabels)

	return s, nil
}

// MustLoad is Load with a panic on failure, for use at process start.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic(fmt.Sprintf("knowledge: failed to load reference data: %v", err))
	}
	return s
}

func loadDataset[T any](fs embed.FS, path string, dst *map[string]T) error {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(*dst) == 0 {
		return fmt.Errorf("parse %s: dataset is empty", path)
	}
	return nil
}
