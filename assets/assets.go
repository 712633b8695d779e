package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:locations
	assetFS embed.FS
)

const locationsDir = "locations"

// Location is one map a viewer can stand in. Peers standing in another
// location never get indicators.
type Location struct {
	Name     string
	Title    string
	Width    int
	Height   int
	TileSize int

	Walls       []Rect
	PlayerSpawn math.Vec2
	PeerSpawns  []math.Vec2
	Routes      []Route
	Warps       []Warp
}

// Rect is a map object's bounds in world pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Route is a polyline a demo peer walks along.
type Route struct {
	Name   string
	Points []math.Vec2 // Converted polyline points to world coordinates
	Loops  bool
}

// Warp moves the viewer to Target when stepped on.
type Warp struct {
	Rect
	Target string
	Arrive math.Vec2
}

type LocationLoader struct{}

func NewLocationLoader() *LocationLoader {
	return &LocationLoader{}
}

// ListLocationNames returns the embedded location names in load order.
func (l *LocationLoader) ListLocationNames() ([]string, error) {
	entries, err := assetFS.ReadDir(locationsDir)
	if err != nil {
		return nil, fmt.Errorf("read locations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadLocations loads every embedded location.
func (l *LocationLoader) LoadLocations() ([]Location, error) {
	names, err := l.ListLocationNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no location files found in %s", locationsDir)
	}

	locations := make([]Location, 0, len(names))
	for _, name := range names {
		loc, err := l.LoadLocation(name)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// MustLoadLocations is LoadLocations for embedded data that ships with the binary.
func (l *LocationLoader) MustLoadLocations() []Location {
	locations, err := l.LoadLocations()
	if err != nil {
		panic(err)
	}
	return locations
}

func (l *LocationLoader) LoadLocation(name string) (Location, error) {
	mapPath := path.Join(locationsDir, name+".tmx")
	tm, err := tiled.LoadFile(mapPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Location{}, fmt.Errorf("load location %s: %w", name, err)
	}

	loc := Location{
		Name:     name,
		Title:    tm.Properties.GetString("title"),
		Width:    tm.Width * tm.TileWidth,
		Height:   tm.Height * tm.TileHeight,
		TileSize: tm.TileWidth,
	}
	if loc.Title == "" {
		loc.Title = name
	}

	for _, og := range tm.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				loc.Walls = append(loc.Walls, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				loc.PlayerSpawn = math.Vec2{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case "PeerSpawns":
			for _, o := range og.Objects {
				loc.PeerSpawns = append(loc.PeerSpawns, math.Vec2{X: o.X, Y: o.Y})
			}
			// Left to right so demo peers always spawn in the same order
			sort.Slice(loc.PeerSpawns, func(i, j int) bool {
				return loc.PeerSpawns[i].X < loc.PeerSpawns[j].X
			})
		case "Routes":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: o.X + point.X,
						Y: o.Y + point.Y,
					}
				}
				loc.Routes = append(loc.Routes, Route{
					Name:   o.Name,
					Points: points,
					Loops:  o.Properties.GetBool("loops"),
				})
			}
		case "Warps":
			for _, o := range og.Objects {
				target := o.Properties.GetString("target")
				if target == "" {
					return Location{}, fmt.Errorf("location %s: warp %d has no target", name, o.ID)
				}
				loc.Warps = append(loc.Warps, Warp{
					Rect:   Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Target: target,
					Arrive: math.Vec2{
						X: o.Properties.GetFloat("arriveX"),
						Y: o.Properties.GetFloat("arriveY"),
					},
				})
			}
		}
	}

	return loc, nil
}

// Find returns the location called name.
func Find(locations []Location, name string) (*Location, bool) {
	for i := range locations {
		if strings.EqualFold(locations[i].Name, name) {
			return &locations[i], true
		}
	}
	return nil, false
}
