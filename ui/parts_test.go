package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssvariant"
)

func TestParts(t *testing.T) {
	tests := []struct {
		owner *Component
		name  string
		want  *Component
	}{
		{Card, "Header", CardHeader},
		{Card, "Footer", CardFooter},
		{Alert, "Description", AlertDescription},
		{ButtonGroup, "Separator", ButtonGroupSeparator},
		{ToggleGroup, "Item", ToggleGroupItem},
		{Skeleton, "Avatar", SkeletonAvatar},
	}

	for _, tt := range tests {
		t.Run(tt.owner.Name()+"."+tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, tt.owner.Part(tt.name))
		})
	}

	assert.Nil(t, Card.Part("Item"))
	assert.Nil(t, Button.Part("Header"))
}

func TestPartsSealed(t *testing.T) {
	require.True(t, Parts.Sealed())
	assert.Equal(t, []string{"Content", "Description", "Footer", "Header", "Title"}, Parts.Parts(Card))

	err := Parts.Attach(Card, "Extra", Badge)
	assert.True(t, errors.Is(err, cssvariant.ErrSealed))
	assert.Nil(t, Card.Part("Extra"))
}

func TestCatalog(t *testing.T) {
	names := Names()
	assert.Len(t, names, 24)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		c, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
		assert.Equal(t, name, c.Schema().Name())
		assert.NotEmpty(t, c.Render(nil).Class, name)
	}

	_, ok := Lookup("carousel")
	assert.False(t, ok)
}
