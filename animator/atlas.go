package animator

import (
	"fmt"
	"image"

	"github.com/alacrity-engine/core/math/geometry"
)

// ImageRef points to the image of an atlas. Inline
// data takes precedence over the file reference.
type ImageRef struct {
	Data []byte
	File string
}

func (ref ImageRef) String() string {
	if len(ref.Data) > 0 {
		return fmt.Sprintf("<inline %d bytes>", len(ref.Data))
	}

	return ref.File
}

// ImageProvider loads decoded atlas images.
type ImageProvider interface {
	LoadImage(ref ImageRef) (image.Image, error)
}

// AtlasSpec describes a tile sheet: a grid of equally
// sized tiles addressed by consecutive global indices
// starting at FirstIndex, in row-major order.
type AtlasSpec struct {
	Name        string
	Source      ImageRef
	TileWidth   int
	TileHeight  int
	ImageWidth  int
	ImageHeight int
	FirstIndex  int
}

// Validate checks the atlas dimensions.
func (spec AtlasSpec) Validate() error {
	if spec.TileWidth <= 0 || spec.TileHeight <= 0 {
		return fmt.Errorf("%w '%s': tile size %dx%d",
			ErrInvalidAtlas, spec.Name, spec.TileWidth, spec.TileHeight)
	}

	if spec.ImageWidth <= 0 || spec.ImageHeight <= 0 {
		return fmt.Errorf("%w '%s': image size %dx%d",
			ErrInvalidAtlas, spec.Name, spec.ImageWidth, spec.ImageHeight)
	}

	return nil
}

// TilesPerRow returns the number of whole tiles in a row.
func (spec AtlasSpec) TilesPerRow() int {
	if spec.TileWidth <= 0 {
		return 0
	}

	return spec.ImageWidth / spec.TileWidth
}

// TilesPerColumn returns the number of whole tiles in a column.
func (spec AtlasSpec) TilesPerColumn() int {
	if spec.TileHeight <= 0 {
		return 0
	}

	return spec.ImageHeight / spec.TileHeight
}

// TileCount returns the number of tiles in the atlas.
func (spec AtlasSpec) TileCount() int {
	return spec.TilesPerRow() * spec.TilesPerColumn()
}

// Contains reports whether the global index
// addresses a tile of the atlas.
func (spec AtlasSpec) Contains(index int) bool {
	return index >= spec.FirstIndex &&
		index < spec.FirstIndex+spec.TileCount()
}

// TextureRegion is a rectangular
// tile of an atlas image.
type TextureRegion struct {
	Index  int
	Atlas  string
	Image  image.Image
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the region bounds in image coordinates.
func (region TextureRegion) Rect() geometry.Rect {
	return geometry.R(
		float64(region.X), float64(region.Y),
		float64(region.X+region.Width), float64(region.Y+region.Height))
}

// ResolveTextures binds global tile indices to atlas regions.
//
// Atlases are visited in order. Each one consumes indices from
// the front of the sequence while they fall within its range;
// the first index outside the range is left for the next atlas.
// The pass is single and left to right: indices are expected to
// be sorted ascending and atlas ranges to be ordered the same
// way. Indices no atlas consumes stay unresolved.
//
// images[i] is the decoded image of atlases[i]; it may be nil.
func ResolveTextures(indices []int, atlases []AtlasSpec, images []image.Image) map[int]TextureRegion {
	textures := map[int]TextureRegion{}
	remaining := indices

	for i, atlas := range atlases {
		var img image.Image

		if i < len(images) {
			img = images[i]
		}

		perRow := atlas.TilesPerRow()

		for len(remaining) > 0 && atlas.Contains(remaining[0]) {
			index := remaining[0]
			localIndex := index - atlas.FirstIndex

			row := localIndex / perRow
			col := localIndex % perRow

			textures[index] = TextureRegion{
				Index:  index,
				Atlas:  atlas.Name,
				Image:  img,
				X:      col * atlas.TileWidth,
				Y:      row * atlas.TileHeight,
				Width:  atlas.TileWidth,
				Height: atlas.TileHeight,
			}

			remaining = remaining[1:]
		}
	}

	return textures
}
