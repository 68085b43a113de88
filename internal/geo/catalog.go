// Package geo carries the static country catalog the map renders from:
// display names, ISO 3166-1 alpha-2 codes, continent membership, and
// centroid coordinates. Membership is modeled as a directed acyclic
// containment graph (world -> continent -> country) so zoom targets and
// continent rollups come from one structure.
package geo

import (
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
)

// WorldNode is the containment graph root.
const WorldNode = "world"

// Place is one renderable country.
type Place struct {
	Name      string
	Code      string
	Continent string
	Lat       float64
	Lon       float64
}

// Continents in the order the tile map lays them out.
var Continents = []string{
	"North America",
	"South America",
	"Europe",
	"Africa",
	"Asia",
	"Oceania",
}

// Catalog resolves dataset country names to renderable places and
// answers containment queries over the world graph.
type Catalog struct {
	byName map[string]Place
	byCode map[string]Place
	world  graph.Graph[string, string]
}

// NewCatalog builds the catalog and its containment graph. The graph is
// rebuilt from the static place table every time; construction never fails.
func NewCatalog() *Catalog {
	c := &Catalog{
		byName: make(map[string]Place, len(places)),
		byCode: make(map[string]Place, len(places)),
	}

	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	_ = g.AddVertex(WorldNode)
	for _, continent := range Continents {
		_ = g.AddVertex(continent)
		_ = g.AddEdge(WorldNode, continent)
	}
	for _, p := range places {
		c.byName[normalize(p.Name)] = p
		c.byCode[p.Code] = p
		_ = g.AddVertex(p.Code)
		_ = g.AddEdge(p.Continent, p.Code)
	}
	c.world = g
	return c
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ByName looks up a place by dataset country name, case-insensitively.
func (c *Catalog) ByName(name string) (Place, bool) {
	p, ok := c.byName[normalize(name)]
	return p, ok
}

// ByCode looks up a place by ISO alpha-2 code.
func (c *Catalog) ByCode(code string) (Place, bool) {
	p, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// Places returns every renderable country sorted by name.
func (c *Catalog) Places() []Place {
	out := make([]Place, 0, len(c.byCode))
	for _, p := range c.byCode {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MembersOf returns a continent's countries sorted by name, walked from
// the containment graph rather than the raw table.
func (c *Catalog) MembersOf(continent string) []Place {
	adjacency, err := c.world.AdjacencyMap()
	if err != nil {
		return nil
	}
	var out []Place
	for code := range adjacency[continent] {
		if p, ok := c.byCode[code]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ContinentOf returns the containing continent for a country code.
func (c *Catalog) ContinentOf(code string) (string, bool) {
	predecessors, err := c.world.PredecessorMap()
	if err != nil {
		return "", false
	}
	for parent := range predecessors[strings.ToUpper(strings.TrimSpace(code))] {
		if parent != WorldNode {
			return parent, true
		}
	}
	return "", false
}

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// ContinentBounds computes a continent's bounding box from member
// centroids. Used as the zoom-to-fit target when a country is selected.
func (c *Catalog) ContinentBounds(continent string) (Bounds, bool) {
	members := c.MembersOf(continent)
	if len(members) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		MinLat: members[0].Lat, MaxLat: members[0].Lat,
		MinLon: members[0].Lon, MaxLon: members[0].Lon,
	}
	for _, p := range members[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}
	return b, true
}
