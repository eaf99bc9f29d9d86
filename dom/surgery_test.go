package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	t.Run("nil child is a no-op", func(t *testing.T) {
		parent := NewParagraph()
		parent.AppendChild(nil)
		assert.Nil(t, parent.FirstChild())
		assert.Nil(t, parent.LastChild())
		require.NoError(t, Check(parent))
	})

	t.Run("first child becomes both first and last", func(t *testing.T) {
		parent := NewParagraph()
		child := NewText("a")
		parent.AppendChild(child)

		assert.Same(t, child, parent.FirstChild())
		assert.Same(t, child, parent.LastChild())
		assert.Same(t, parent, child.Parent())
		assert.Nil(t, child.PrevSibling())
		assert.Nil(t, child.NextSibling())
		require.NoError(t, Check(parent))
	})

	t.Run("subsequent children link after last", func(t *testing.T) {
		parent := NewParagraph()
		a := NewText("a")
		b := NewText("b")
		parent.AppendChild(a)
		parent.AppendChild(b)

		assert.Same(t, a, parent.FirstChild())
		assert.Same(t, b, parent.LastChild())
		assert.Same(t, b, a.NextSibling())
		assert.Same(t, a, b.PrevSibling())
		assert.Same(t, parent, b.Parent())
		require.NoError(t, Check(parent))
	})

	t.Run("child subtree is untouched", func(t *testing.T) {
		parent := NewDocument()
		child := NewParagraph()
		grandchild := NewText("x")
		child.AppendChild(grandchild)

		parent.AppendChild(child)

		assert.Same(t, grandchild, child.FirstChild())
		assert.Same(t, child, grandchild.Parent())
		require.NoError(t, Check(parent))
	})

	t.Run("re-append clears stale next link", func(t *testing.T) {
		// Moving a node from one parent to another via AppendChild must not
		// leave it pointing at its old siblings.
		oldParent := NewParagraph()
		a := NewText("a")
		b := NewText("b")
		oldParent.AppendChild(a)
		oldParent.AppendChild(b)

		newParent := NewParagraph()
		newParent.AppendChild(a)

		assert.Same(t, newParent, a.Parent())
		assert.Nil(t, a.NextSibling())
		require.NoError(t, Check(newParent))
	})
}

func TestReplaceNode(t *testing.T) {
	t.Run("replace only child", func(t *testing.T) {
		parent := NewParagraph()
		old := NewText("old")
		parent.AppendChild(old)

		repl := NewList()
		ReplaceNode(old, repl)

		assert.Same(t, repl, parent.FirstChild())
		assert.Same(t, repl, parent.LastChild())
		assert.Same(t, parent, repl.Parent())
		assert.Nil(t, repl.PrevSibling())
		assert.Nil(t, repl.NextSibling())
		require.NoError(t, Check(parent))
	})

	t.Run("replace first of three", func(t *testing.T) {
		parent := NewParagraph()
		a := NewText("a")
		b := NewText("b")
		c := NewText("c")
		parent.AppendChild(a)
		parent.AppendChild(b)
		parent.AppendChild(c)

		repl := NewList()
		ReplaceNode(a, repl)

		assert.Same(t, repl, parent.FirstChild())
		assert.Same(t, c, parent.LastChild())
		assert.Same(t, b, repl.NextSibling())
		assert.Same(t, repl, b.PrevSibling())
		require.NoError(t, Check(parent))
	})

	t.Run("replace middle of three", func(t *testing.T) {
		parent := NewParagraph()
		a := NewText("a")
		b := NewText("b")
		c := NewText("c")
		parent.AppendChild(a)
		parent.AppendChild(b)
		parent.AppendChild(c)

		repl := NewList()
		ReplaceNode(b, repl)

		assert.Same(t, repl, a.NextSibling())
		assert.Same(t, a, repl.PrevSibling())
		assert.Same(t, c, repl.NextSibling())
		assert.Same(t, repl, c.PrevSibling())
		require.NoError(t, Check(parent))
	})

	t.Run("replace last of three", func(t *testing.T) {
		parent := NewParagraph()
		a := NewText("a")
		b := NewText("b")
		c := NewText("c")
		parent.AppendChild(a)
		parent.AppendChild(b)
		parent.AppendChild(c)

		repl := NewList()
		ReplaceNode(c, repl)

		assert.Same(t, repl, parent.LastChild())
		assert.Same(t, repl, b.NextSibling())
		assert.Same(t, b, repl.PrevSibling())
		require.NoError(t, Check(parent))
	})

	t.Run("replacement keeps its own children", func(t *testing.T) {
		parent := NewParagraph()
		old := NewText("old")
		parent.AppendChild(old)

		repl := NewList()
		item := NewItem(1)
		repl.AppendChild(item)

		ReplaceNode(old, repl)

		assert.Same(t, item, repl.FirstChild())
		assert.Same(t, repl, item.Parent())
		require.NoError(t, Check(parent))
	})

	t.Run("replace detached node", func(t *testing.T) {
		old := NewText("old")
		repl := NewList()
		ReplaceNode(old, repl)

		assert.Nil(t, repl.Parent())
		assert.Nil(t, repl.PrevSibling())
		assert.Nil(t, repl.NextSibling())
	})
}

func TestRemoveNode(t *testing.T) {
	t.Run("nil and detached nodes are no-ops", func(t *testing.T) {
		RemoveNode(nil)
		n := NewText("x")
		RemoveNode(n)
		assert.Nil(t, n.Parent())
	})

	t.Run("remove only child empties the parent", func(t *testing.T) {
		parent := NewParagraph()
		child := NewText("a")
		parent.AppendChild(child)

		RemoveNode(child)

		assert.Nil(t, parent.FirstChild())
		assert.Nil(t, parent.LastChild())
		assert.Nil(t, child.Parent())
		require.NoError(t, Check(parent))
	})

	t.Run("remove middle of three relinks neighbors", func(t *testing.T) {
		parent := NewParagraph()
		a := NewText("a")
		b := NewText("b")
		c := NewText("c")
		parent.AppendChild(a)
		parent.AppendChild(b)
		parent.AppendChild(c)

		RemoveNode(b)

		assert.Same(t, c, a.NextSibling())
		assert.Same(t, a, c.PrevSibling())
		assert.Nil(t, b.Parent())
		assert.Nil(t, b.PrevSibling())
		assert.Nil(t, b.NextSibling())
		require.NoError(t, Check(parent))
	})

	t.Run("removed node keeps its children", func(t *testing.T) {
		parent := NewParagraph()
		child := NewItem(1)
		grandchild := NewText("x")
		child.AppendChild(grandchild)
		parent.AppendChild(child)

		RemoveNode(child)

		assert.Same(t, grandchild, child.FirstChild())
		require.NoError(t, Check(child))
	})
}

// TestSurgerySequencesPreserveInvariants drives a mixed sequence of
// AppendChild and ReplaceNode calls and verifies the navigation invariants
// after every single mutation.
func TestSurgerySequencesPreserveInvariants(t *testing.T) {
	root := NewDocument()
	require.NoError(t, Check(root))

	section := NewSection("NAME")
	root.AppendChild(section)
	require.NoError(t, Check(root))

	para := NewParagraph()
	section.AppendChild(para)
	require.NoError(t, Check(root))

	for _, s := range []string{"a", "b", "c", "d"} {
		para.AppendChild(NewText(s))
		require.NoError(t, Check(root))
	}

	// Replace each child of para in turn with an Item wrapper.
	for _, child := range para.Children() {
		item := NewItem(1)
		ReplaceNode(child, item)
		require.NoError(t, Check(root))
	}
	assert.Equal(t, 4, para.ChildCount())

	// Append under a replaced node and re-check.
	para.FirstChild().AppendChild(NewText("nested"))
	require.NoError(t, Check(root))
}

// TestSiblingOrderPreserved verifies that appended children read back in
// exactly the order they were appended.
func TestSiblingOrderPreserved(t *testing.T) {
	parent := NewParagraph()
	values := []string{"one", "two", "three", "four", "five"}
	for _, v := range values {
		parent.AppendChild(NewText(v))
	}

	var got []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		got = append(got, c.Value())
	}
	assert.Equal(t, values, got)

	// Walk backwards from the last child too.
	var reversed []string
	for c := parent.LastChild(); c != nil; c = c.PrevSibling() {
		reversed = append(reversed, c.Value())
	}
	assert.Equal(t, []string{"five", "four", "three", "two", "one"}, reversed)
}
