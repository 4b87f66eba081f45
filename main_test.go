package main

import (
	"image"
	"io"
	"log"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alacrity-engine/keyframe-animator/animator"
	"github.com/alacrity-engine/keyframe-animator/resource"
)

type blankImages struct{}

func (blankImages) LoadImage(ref animator.ImageRef) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 32, 16)), nil
}

const packYAML = `
- name: blink
  tag: fx
  textureID: sheet
  spritesheets: [sheet]
  timeline:
    - alpha: 1
    - texture: 1
      blendmode: screen
      pivot: {x: 5, y: 5}
      position: {x: 0, y: 0}
`

func packWithStrict(t *testing.T, strictMode bool) []resource.BakedFrame {
	t.Helper()

	previous := strict
	strict = strictMode
	t.Cleanup(func() { strict = previous })

	store, err := resource.Open(filepath.Join(t.TempDir(), "stage.res"))

	if err != nil {
		t.Fatal(err)
	}

	defer store.Close()

	animationsMeta, err := ReadAnimationsData([]byte(packYAML))

	if err != nil {
		t.Fatal(err)
	}

	atlases := map[string]animator.AtlasSpec{"sheet": {
		Name: "sheet", Source: animator.ImageRef{File: "sheet.png"},
		TileWidth: 16, TileHeight: 16, ImageWidth: 32, ImageHeight: 16,
	}}

	err = packAnimation(store, animationsMeta[0], atlases,
		blankImages{}, log.New(io.Discard, "", 0))

	if err != nil {
		t.Fatal(err)
	}

	frames, err := store.Keyframes("blink")

	if err != nil {
		t.Fatal(err)
	}

	return frames
}

func TestPackAnimationStrictKeepsBakedFrames(t *testing.T) {
	loose := packWithStrict(t, false)
	checked := packWithStrict(t, true)

	if !reflect.DeepEqual(loose, checked) {
		t.Errorf("strict validation changed the baked frames:\n%+v\n%+v", loose, checked)
	}

	first := checked[0]

	if first.Texture != nil || first.Pivot != nil || first.BlendMode != "" {
		t.Errorf("frame 0 carries values of later frames: %+v", first)
	}

	if checked[1].Texture == nil || checked[1].Texture.Index != 1 || checked[1].BlendMode != "SCREEN" {
		t.Errorf("unexpected frame 1: %+v", checked[1])
	}
}

func TestPackAnimationMissingSpritesheet(t *testing.T) {
	store, err := resource.Open(filepath.Join(t.TempDir(), "stage.res"))

	if err != nil {
		t.Fatal(err)
	}

	defer store.Close()

	err = packAnimation(store, AnimationMeta{Name: "lost", Spritesheets: []string{"none"}},
		nil, blankImages{}, log.New(io.Discard, "", 0))

	if err == nil || !strings.Contains(err.Error(), "spritesheet 'none'") {
		t.Errorf("expected a missing spritesheet error, got %v", err)
	}
}

func TestAnimationMetaValidate(t *testing.T) {
	mode := func(m string) *KeyframeMeta { return &KeyframeMeta{BlendMode: &m} }

	tests := []struct {
		name  string
		frame *KeyframeMeta
		valid bool
	}{
		{"lower case", mode("multiply"), true},
		{"normal", mode("NORMAL"), true},
		{"unknown", mode("overlay"), false},
		{"absent", &KeyframeMeta{}, true},
		{"hole", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := AnimationMeta{Name: "a", Timeline: []*KeyframeMeta{tt.frame}}
			err := meta.Validate()

			if (err == nil) != tt.valid {
				t.Errorf("unexpected result %v", err)
			}
		})
	}
}
