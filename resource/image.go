package resource

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/alacrity-engine/keyframe-animator/animator"
	bolt "go.etcd.io/bbolt"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const imagesBucket = "images"

func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	return img, nil
}

func decodeInline(data []byte) (image.Image, error) {
	img, err := decodeImage(data)

	if err != nil {
		return nil, fmt.Errorf("decode inline data: %w", err)
	}

	return img, nil
}

// FileProvider loads atlas images from
// files relative to the root directory.
type FileProvider struct {
	Root string
}

// LoadImage decodes the inline data of the
// reference or, if there is none, its file.
func (provider FileProvider) LoadImage(ref animator.ImageRef) (image.Image, error) {
	if len(ref.Data) > 0 {
		return decodeInline(ref.Data)
	}

	path := ref.File

	if !filepath.IsAbs(path) {
		path = filepath.Join(provider.Root, path)
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	img, err := decodeImage(data)

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

// BoltProvider loads atlas images stored in
// the images bucket of a resource file.
type BoltProvider struct {
	db *bolt.DB
}

// NewBoltProvider creates a provider over the resource file.
func NewBoltProvider(db *bolt.DB) *BoltProvider {
	return &BoltProvider{db: db}
}

// LoadImage decodes the inline data of the reference or,
// if there is none, the image stored under its file name.
func (provider *BoltProvider) LoadImage(ref animator.ImageRef) (image.Image, error) {
	if len(ref.Data) > 0 {
		return decodeInline(ref.Data)
	}

	var data []byte

	err := provider.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(imagesBucket))

		if buck == nil {
			return fmt.Errorf("the %s bucket not found", imagesBucket)
		}

		imgBytes := buck.Get([]byte(ref.File))

		if imgBytes == nil {
			return fmt.Errorf("image '%s' not found", ref.File)
		}

		// The slice is only valid inside the transaction.
		data = append([]byte(nil), imgBytes...)

		return nil
	})

	if err != nil {
		return nil, err
	}

	img, err := decodeImage(data)

	if err != nil {
		return nil, fmt.Errorf("decode image '%s': %w", ref.File, err)
	}

	return img, nil
}
