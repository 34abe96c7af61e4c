package prefab

import (
	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/models"
)

// AssetIndex is the lookup side of the asset registry.
type AssetIndex interface {
	Get(kind models.Kind, id models.UUID) (assets.Entry, bool)
}

// ResolveAssets returns the asset references of p that idx does not hold
// under the referenced kind.
func ResolveAssets(p *Prefab, idx AssetIndex) []models.AssetRef {
	var missing []models.AssetRef
	for _, ref := range p.AssetRefs() {
		if _, ok := idx.Get(ref.Kind, ref.UUID); !ok {
			missing = append(missing, ref)
		}
	}
	return missing
}
