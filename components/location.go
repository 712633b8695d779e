package components

import (
	"github.com/automoto/peerfinder/assets"
	"github.com/yohamta/donburi"
)

type LocationData struct {
	Current *assets.Location
	All     []assets.Location
}

var Location = donburi.NewComponentType[LocationData]()
