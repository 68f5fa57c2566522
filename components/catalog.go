package components

import (
	"github.com/automoto/ronin-dash/assets"
	"github.com/yohamta/donburi"
)

type CatalogData struct {
	*assets.Catalog
}

var Catalog = donburi.NewComponentType[CatalogData]()
