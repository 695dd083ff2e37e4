package hierarchy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indented = `
top
 childA
  grandchild
 childB
second
`

func TestNewNode_Levels(t *testing.T) {
	n := NewNode("  grandchild", " ")
	assert.Equal(t, 2, n.Level)
	assert.Equal(t, "grandchild", n.Text)

	n = NewNode("top", " ")
	assert.Equal(t, 0, n.Level)
}

func TestBuildTree_FromIndentedText(t *testing.T) {
	root, err := BuildTree(indented, " ")
	require.NoError(t, err)

	children := root.AsNarrowerMap()
	assert.Equal(t, []string{"second", "top"}, children.Get("root"))
	assert.Equal(t, []string{"childA", "childB"}, children.Get("top"))
	assert.Equal(t, []string{"grandchild"}, children.Get("childA"))
	assert.Empty(t, children.Get("childB"))
	assert.Empty(t, children.Get("second"))
}

func TestBuildTree_LevelJump(t *testing.T) {
	_, err := BuildTree("top\n  grandchild", " ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLevelJump)
}

func TestBuildTree_MultiCharSeparator(t *testing.T) {
	text := "top\n--childA\n----grandchild"
	root, err := BuildTree(text, "--")
	require.NoError(t, err)

	lines := root.AsIndentedText("--")
	assert.Equal(t, []string{"root", "top", "--childA", "----grandchild"}, lines)
}

func TestAsLevelList_HierarchicalOrder(t *testing.T) {
	root, err := BuildTree(indented, " ")
	require.NoError(t, err)

	entries := root.AsLevelList()
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	// siblings sorted by text, children right below their parent
	assert.Equal(t, []string{"root", "second", "top", "childA", "grandchild", "childB"}, texts)
	assert.Equal(t, 2, entries[4].Level) // grandchild sits below top(0)/childA(1)
}

func TestBuildFromNarrower_SingleRoot(t *testing.T) {
	m := NewNarrowerMap()
	m.Set("top", []string{"childA", "childB"})
	m.Set("childA", []string{"grandchild"})
	m.Set("childB", nil)
	m.Set("grandchild", nil)

	root, err := BuildFromNarrower(m)
	require.NoError(t, err)
	assert.Equal(t, "top", root.Text)

	back := root.AsNarrowerMap()
	assert.Equal(t, []string{"childA", "childB"}, back.Get("top"))
	assert.Equal(t, []string{"grandchild"}, back.Get("childA"))
}

func TestBuildFromNarrower_MultipleRoots(t *testing.T) {
	m := NewNarrowerMap()
	m.Set("a", nil)
	m.Set("b", []string{"c"})
	m.Set("c", nil)

	root, err := BuildFromNarrower(m)
	require.NoError(t, err)
	assert.Equal(t, "root", root.Text)
	assert.Equal(t, []string{"a", "b"}, root.AsNarrowerMap().Get("root"))
}

func TestBuildFromNarrower_UndefinedChild(t *testing.T) {
	m := NewNarrowerMap()
	m.Set("a", []string{"b"})
	m.Set("b", []string{"ghost"})

	_, err := BuildFromNarrower(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndefinedChild)
	assert.Contains(t, err.Error(), "ghost")
}

func TestBuildFromNarrower_Cycle(t *testing.T) {
	m := NewNarrowerMap()
	m.Set("a", []string{"b"})
	m.Set("b", []string{"a"})

	_, err := BuildFromNarrower(m)
	require.Error(t, err)
}

func TestRoundTrip_IndentToNarrowerAndBack(t *testing.T) {
	root, err := BuildTree(indented, " ")
	require.NoError(t, err)

	rebuilt, err := BuildFromNarrower(root.AsNarrowerMap())
	require.NoError(t, err)

	// key order differs with build direction, the listings do not
	assert.Equal(t, root.AsNarrowerMap().Children, rebuilt.AsNarrowerMap().Children)
	assert.Equal(t,
		strings.Join(root.AsIndentedText(" "), "\n"),
		strings.Join(rebuilt.AsIndentedText(" "), "\n"))
}
