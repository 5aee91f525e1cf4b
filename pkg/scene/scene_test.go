package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUnknownSceneReturnsError(t *testing.T) {
	_, err := Build("not-a-scene", 100, 16.0/9.0)
	assert.Error(t, err)
}

func TestBuildKnownScenesProduceAWorldAndCamera(t *testing.T) {
	for _, name := range []string{"random-spheres", "cornell-box", "cornell-smoke", "perlin-spheres"} {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name, 64, 16.0/9.0)
			require.NoError(t, err)
			require.NotNil(t, s.Camera)
			require.NotNil(t, s.World)
			require.NotNil(t, s.Background)

			box, ok := s.World.BoundingBox(0, 1)
			assert.True(t, ok)
			assert.True(t, box.Max.X >= box.Min.X)
		})
	}
}

func TestNamesListsAllSixScenes(t *testing.T) {
	assert.Len(t, Names(), 6)
}
