package main

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/alacrity-engine/core/math/geometry"
	"github.com/alacrity-engine/keyframe-animator/animator"
	"gopkg.in/yaml.v2"
)

// SpritesheetMeta is spritesheet metadata
// read from the YAML file.
type SpritesheetMeta struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Data        string `yaml:"data"`
	TileWidth   int    `yaml:"tilewidth"`
	TileHeight  int    `yaml:"tileheight"`
	ImageWidth  int    `yaml:"imagewidth"`
	ImageHeight int    `yaml:"imageheight"`
	FirstIndex  int    `yaml:"firstindex"`
}

// PointMeta is a vector in the animation metadata.
type PointMeta struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// KeyframeMeta is a single timeline entry.
// Absent fields are not declared at the frame.
type KeyframeMeta struct {
	Texture   *int       `yaml:"texture"`
	BlendMode *string    `yaml:"blendmode"`
	Pivot     *PointMeta `yaml:"pivot"`
	Position  *PointMeta `yaml:"position"`
	Rotation  *float64   `yaml:"rotation"`
	Scale     *PointMeta `yaml:"scale"`
	Alpha     *float64   `yaml:"alpha"`
}

// AnimationMeta is animation metadata
// read from the YAML file.
type AnimationMeta struct {
	Name         string          `yaml:"name"`
	Tag          string          `yaml:"tag"`
	Type         string          `yaml:"type"`
	TextureID    string          `yaml:"textureID"`
	Spritesheets []string        `yaml:"spritesheets"`
	Textures     []int           `yaml:"textures"`
	Timeline     []*KeyframeMeta `yaml:"timeline"`
}

// ReadAnimationsData parses the animations metadata file.
func ReadAnimationsData(contents []byte) ([]AnimationMeta, error) {
	var animationsMeta []AnimationMeta
	err := yaml.Unmarshal(contents, &animationsMeta)

	if err != nil {
		return nil, err
	}

	return animationsMeta, nil
}

// ReadSpritesheetsData parses the spritesheets metadata file.
func ReadSpritesheetsData(contents []byte) ([]SpritesheetMeta, error) {
	var spritesheetsMeta []SpritesheetMeta
	err := yaml.Unmarshal(contents, &spritesheetsMeta)

	if err != nil {
		return nil, err
	}

	return spritesheetsMeta, nil
}

// AtlasSpec converts the spritesheet metadata. Inline data
// is base64, optionally in the form of a data URL.
func (meta SpritesheetMeta) AtlasSpec() (animator.AtlasSpec, error) {
	spec := animator.AtlasSpec{
		Name:        meta.Name,
		Source:      animator.ImageRef{File: meta.File},
		TileWidth:   meta.TileWidth,
		TileHeight:  meta.TileHeight,
		ImageWidth:  meta.ImageWidth,
		ImageHeight: meta.ImageHeight,
		FirstIndex:  meta.FirstIndex,
	}

	if meta.Data != "" {
		encoded := meta.Data

		if strings.HasPrefix(encoded, "data:") {
			_, encoded, _ = strings.Cut(encoded, ",")
		}

		data, err := base64.StdEncoding.DecodeString(encoded)

		if err != nil {
			return spec, fmt.Errorf("decode data of spritesheet '%s': %w", meta.Name, err)
		}

		spec.Source.Data = data
	}

	return spec, spec.Validate()
}

// Keyframe converts the timeline entry.
func (meta *KeyframeMeta) Keyframe() *animator.Keyframe {
	if meta == nil {
		return nil
	}

	kf := &animator.Keyframe{
		Texture:  meta.Texture,
		Pivot:    meta.Pivot.vec(),
		Position: meta.Position.vec(),
		Rotation: meta.Rotation,
		Scale:    meta.Scale.vec(),
		Alpha:    meta.Alpha,
	}

	if meta.BlendMode != nil {
		mode := animator.BlendMode(strings.ToUpper(*meta.BlendMode))
		kf.BlendMode = &mode
	}

	return kf
}

func (p *PointMeta) vec() *geometry.Vec {
	if p == nil {
		return nil
	}

	v := geometry.V(p.X, p.Y)
	return &v
}

// Animation converts the animation metadata. If no texture
// indices are listed, the ones the timeline references
// are used in ascending order.
func (meta AnimationMeta) Animation() animator.Animation {
	anim := animator.Animation{
		Type:     meta.Type,
		Textures: meta.Textures,
		Timeline: make([]*animator.Keyframe, len(meta.Timeline)),
	}

	for i, frame := range meta.Timeline {
		anim.Timeline[i] = frame.Keyframe()
	}

	if len(anim.Textures) == 0 {
		anim.Textures = referencedTextures(meta.Timeline)
	}

	return anim
}

// Validate checks that every blend mode of
// the timeline is known to the render system.
func (meta AnimationMeta) Validate() error {
	for i, frame := range meta.Timeline {
		if frame == nil || frame.BlendMode == nil {
			continue
		}

		mode := animator.BlendMode(strings.ToUpper(*frame.BlendMode))

		if !mode.Known() {
			return fmt.Errorf("animation '%s' frame %d: unknown blend mode '%s'",
				meta.Name, i, *frame.BlendMode)
		}
	}

	return nil
}

func referencedTextures(timeline []*KeyframeMeta) []int {
	seen := map[int]bool{}
	textures := []int{}

	for _, frame := range timeline {
		if frame == nil || frame.Texture == nil || seen[*frame.Texture] {
			continue
		}

		seen[*frame.Texture] = true
		textures = append(textures, *frame.Texture)
	}

	sort.Ints(textures)

	return textures
}
