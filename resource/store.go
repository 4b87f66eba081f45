package resource

import (
	"fmt"

	"github.com/alacrity-engine/core/math/geometry"
	"github.com/alacrity-engine/keyframe-animator/animator"
	codec "github.com/alacrity-engine/resource-codec"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v2"
)

const (
	keyframesBucket  = "keyframes"
	animationsBucket = "animations"
	tagsBucket       = "tags"
)

// Store is a resource file holding atlas
// images and baked animations.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the resource file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0666, nil)

	if err != nil {
		return nil, fmt.Errorf("open resource file %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close closes the resource file.
func (store *Store) Close() error {
	return store.db.Close()
}

// Images returns a provider loading
// images from the resource file.
func (store *Store) Images() *BoltProvider {
	return NewBoltProvider(store.db)
}

// PutImage stores the encoded image under the name.
func (store *Store) PutImage(name string, data []byte) error {
	return store.db.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists([]byte(imagesBucket))

		if err != nil {
			return err
		}

		return buck.Put([]byte(name), data)
	})
}

// PutAnimation stores the baked frames of the animation
// and its texture frame sequence in the alacrity format.
func (store *Store) PutAnimation(name, textureID string, frames []BakedFrame) error {
	keyframeData, err := yaml.Marshal(frames)

	if err != nil {
		return fmt.Errorf("encode keyframes of '%s': %w", name, err)
	}

	anim := TextureAnimation(textureID, frames)
	animData, err := anim.ToBytes()

	if err != nil {
		return fmt.Errorf("encode animation '%s': %w", name, err)
	}

	return store.db.Update(func(tx *bolt.Tx) error {
		keyframeBuck, err := tx.CreateBucketIfNotExists([]byte(keyframesBucket))

		if err != nil {
			return err
		}

		err = keyframeBuck.Put([]byte(name), keyframeData)

		if err != nil {
			return err
		}

		animBuck, err := tx.CreateBucketIfNotExists([]byte(animationsBucket))

		if err != nil {
			return err
		}

		return animBuck.Put([]byte(name), animData)
	})
}

// Keyframes reads the baked frames of the animation.
func (store *Store) Keyframes(name string) ([]BakedFrame, error) {
	var frames []BakedFrame

	err := store.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(keyframesBucket))

		if buck == nil {
			return fmt.Errorf("the %s bucket not found", keyframesBucket)
		}

		data := buck.Get([]byte(name))

		if data == nil {
			return fmt.Errorf("animation '%s' not found", name)
		}

		return yaml.Unmarshal(data, &frames)
	})

	if err != nil {
		return nil, err
	}

	return frames, nil
}

// PutTags stores the animation names of every tag.
func (store *Store) PutTags(tags map[string][]string) error {
	return store.db.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists([]byte(tagsBucket))

		if err != nil {
			return err
		}

		for tagID, tag := range tags {
			tagData, err := codec.EncodeTag(tag)

			if err != nil {
				return err
			}

			err = buck.Put([]byte(tagID), tagData)

			if err != nil {
				return err
			}
		}

		return nil
	})
}

// TextureAnimation converts the baked frames into a sequence of
// texture rectangles with durations in frames. Consecutive frames
// showing the same region are merged. Frames before the first
// texture are skipped.
func TextureAnimation(textureID string, frames []BakedFrame) *codec.AnimationData {
	anim := &codec.AnimationData{
		TextureID: textureID,
		Frames:    make([]geometry.Rect, 0),
		Durations: make([]int32, 0),
	}

	var last *BakedTexture

	for _, frame := range frames {
		if frame.Texture == nil {
			continue
		}

		if last != nil && *last == *frame.Texture {
			anim.Durations[len(anim.Durations)-1]++
			continue
		}

		last = frame.Texture
		anim.Frames = append(anim.Frames, textureRect(*frame.Texture))
		anim.Durations = append(anim.Durations, 1)
	}

	return anim
}

func textureRect(texture BakedTexture) geometry.Rect {
	return animator.TextureRegion{
		Index:  texture.Index,
		Atlas:  texture.Atlas,
		X:      texture.X,
		Y:      texture.Y,
		Width:  texture.Width,
		Height: texture.Height,
	}.Rect()
}
