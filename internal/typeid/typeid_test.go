package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndValidate(t *testing.T) {
	id := NewNodeID()
	assert.True(t, strings.HasPrefix(id, "node_"))
	require.NoError(t, Validate(id, PrefixNode))

	assert.Error(t, Validate(id, PrefixScene))
	assert.Error(t, Validate("not-a-typeid", PrefixNode))

	assert.NotEqual(t, NewSceneID(), NewSceneID())
}
