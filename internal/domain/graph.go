package domain

// ColorTier buckets artists by how many albums the library holds for them
type ColorTier int

const (
	TierNone ColorTier = iota // 0 albums, discovered through similarity
	TierOne
	TierTwo
	TierThree
	TierFour
	TierMany // more than 4
)

// tierColors go from lightest to darkest as album count grows
var tierColors = [...]string{
	TierNone:  "#f5f5f5",
	TierOne:   "#d4e6fc",
	TierTwo:   "#a9cdfb",
	TierThree: "#7eb4fa",
	TierFour:  "#539cfc",
	TierMany:  "#1f6fd6",
}

// TierForAlbumCount maps an album count to its color tier
func TierForAlbumCount(albumCount int) ColorTier {
	switch {
	case albumCount <= 0:
		return TierNone
	case albumCount > 4:
		return TierMany
	default:
		return ColorTier(albumCount)
	}
}

// Color returns the hex color of the tier
func (t ColorTier) Color() string {
	if t < TierNone || t > TierMany {
		return tierColors[TierNone]
	}
	return tierColors[t]
}

// Tiers returns every tier from lightest to darkest
func Tiers() []ColorTier {
	return []ColorTier{TierNone, TierOne, TierTwo, TierThree, TierFour, TierMany}
}

// Node is one artist in the similarity graph
type Node struct {
	ID    int       `json:"id"`
	Label string    `json:"label"`
	Tier  ColorTier `json:"tier"`
	Color string    `json:"color"`
}

// Edge links two artist ids
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Graph is the visual projection of a registry and its similarity cache
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeByID returns the node with the given id
func (g *Graph) NodeByID(id int) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
