package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/alacrity-engine/keyframe-animator/animator"
	"github.com/alacrity-engine/keyframe-animator/resource"
)

var (
	spritesheetsPath         string
	animationsIndexPath      string
	spritesheetsMetadataPath string
	resourceFilePath         string
	embedImages              bool
	strict                   bool
	verbose                  bool
)

func parseFlags() {
	flag.StringVar(&spritesheetsPath, "spritesheets", "./spritesheets",
		"Path to the directory where spritesheets are stored.")
	flag.StringVar(&animationsIndexPath, "animations-meta", "./animations-meta.yml",
		"Path to the file where animation descriptions are stored.")
	flag.StringVar(&spritesheetsMetadataPath, "spritesheets-meta",
		"./spritesheets-meta.yml", "Path to the spritesheets metadata file.")
	flag.StringVar(&resourceFilePath, "out", "./stage.res",
		"Resource file to store animations and spritesheets.")
	flag.BoolVar(&embedImages, "embed-images", false,
		"Store spritesheet images in the resource file and load them from there.")
	flag.BoolVar(&strict, "strict", false,
		"Fail on frames referencing textures no spritesheet covers.")
	flag.BoolVar(&verbose, "verbose", false,
		"Log texture resolution details.")

	flag.Parse()
}

func main() {
	parseFlags()

	logger := log.New(io.Discard, "", 0)

	if verbose {
		logger = log.New(os.Stderr, "", log.Ltime)
	}

	// Open the resource file.
	resourceFile, err := resource.Open(resourceFilePath)
	handleError(err)
	defer resourceFile.Close()

	// Read spritesheets data.
	contents, err := os.ReadFile(spritesheetsMetadataPath)
	handleError(err)
	spritesheetsMeta, err := ReadSpritesheetsData(contents)
	handleError(err)

	atlases := map[string]animator.AtlasSpec{}

	for _, ssMeta := range spritesheetsMeta {
		atlas, err := ssMeta.AtlasSpec()
		handleError(err)

		if embedImages && len(atlas.Source.Data) == 0 {
			imgBytes, err := os.ReadFile(filepath.Join(spritesheetsPath, atlas.Source.File))
			handleError(err)
			handleError(resourceFile.PutImage(atlas.Source.File, imgBytes))
		}

		atlases[ssMeta.Name] = atlas
	}

	var images animator.ImageProvider = resource.FileProvider{Root: spritesheetsPath}

	if embedImages {
		images = resourceFile.Images()
	}

	// Read animations data.
	contents, err = os.ReadFile(animationsIndexPath)
	handleError(err)
	animationsMeta, err := ReadAnimationsData(contents)
	handleError(err)

	// Read animation tags.
	animTags := map[string][]string{}

	for _, animMeta := range animationsMeta {
		tag := animMeta.Tag

		// If the tag is absent - create it.
		if _, ok := animTags[tag]; !ok {
			animTags[tag] = []string{}
		}

		// Add the animation name to the tag.
		animTags[tag] = append(animTags[tag],
			animMeta.Name)
	}

	// Bake and save everything.
	for _, animationMeta := range animationsMeta {
		err = packAnimation(resourceFile, animationMeta, atlases, images, logger)
		handleError(err)
	}

	handleError(resourceFile.PutTags(animTags))
}

func packAnimation(resourceFile *resource.Store, animationMeta AnimationMeta,
	atlases map[string]animator.AtlasSpec, images animator.ImageProvider, logger *log.Logger) error {
	specs := make([]animator.AtlasSpec, 0, len(animationMeta.Spritesheets))

	for _, ssID := range animationMeta.Spritesheets {
		atlas, ok := atlases[ssID]

		if !ok {
			return fmt.Errorf(
				"spritesheet '%s' of animation '%s' not found", ssID, animationMeta.Name)
		}

		specs = append(specs, atlas)
	}

	animation := animationMeta.Animation()

	// Validation plays on its own animator
	// so the baked pose starts clean.
	if strict {
		err := animationMeta.Validate()

		if err != nil {
			return err
		}

		check, err := animator.New(animation, specs, images, &animator.Pose{})

		if err != nil {
			return fmt.Errorf("animation '%s': %w", animationMeta.Name, err)
		}

		for frame := 0; frame < check.Duration(); frame++ {
			err = check.TickStrict(frame)

			if err != nil {
				return fmt.Errorf("animation '%s': %w", animationMeta.Name, err)
			}
		}
	}

	pose := &animator.Pose{}
	anim, err := animator.New(animation, specs,
		images, pose, animator.WithLogger(logger))

	if err != nil {
		return fmt.Errorf("animation '%s': %w", animationMeta.Name, err)
	}

	frames := resource.Bake(anim, pose)
	logger.Printf("baked %d frames of '%s'", len(frames), animationMeta.Name)

	return resourceFile.PutAnimation(animationMeta.Name, animationMeta.TextureID, frames)
}

func handleError(err error) {
	if err != nil {
		panic(err)
	}
}
