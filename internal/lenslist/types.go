package lenslist

// Lens holds one lens parsed from the catalog file. Dimensions are the
// physical barrel measurements in millimeters; Tags are free-form categorical
// markers ("owned", "wishlist", ...) kept in catalog order.
type Lens struct {
	Name     string
	Diameter float64
	Length   float64
	Tags     []string
}
