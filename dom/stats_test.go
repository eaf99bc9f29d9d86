package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectStats(t *testing.T) {
	t.Run("nil root yields zero stats", func(t *testing.T) {
		stats := CollectStats(nil)
		assert.Equal(t, 0, stats.NodeCount)
		assert.Equal(t, 0, stats.MaxDepth)
		assert.Empty(t, stats.KindCounts)
	})

	t.Run("single node", func(t *testing.T) {
		stats := CollectStats(NewDocument())
		assert.Equal(t, 1, stats.NodeCount)
		assert.Equal(t, 0, stats.MaxDepth)
		assert.Equal(t, 1, stats.KindCounts[KindDocument])
	})

	t.Run("nested tree", func(t *testing.T) {
		doc := NewDocument()
		para := NewParagraph()
		doc.AppendChild(para)
		para.AppendChild(NewText("a"))
		para.AppendChild(NewText("b"))

		list := NewList()
		item := NewItem(1)
		item.AppendChild(NewText("c"))
		list.AppendChild(item)
		doc.AppendChild(list)

		stats := CollectStats(doc)
		assert.Equal(t, 7, stats.NodeCount)
		assert.Equal(t, 3, stats.MaxDepth)
		assert.Equal(t, 3, stats.KindCounts[KindText])
		assert.Equal(t, 1, stats.KindCounts[KindParagraph])
		assert.Equal(t, 1, stats.KindCounts[KindList])
		assert.Equal(t, 1, stats.KindCounts[KindItem])
	})
}
