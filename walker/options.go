package walker

import (
	"context"

	"github.com/erraggy/podtools/dom"
)

// Option configures the Walker.
type Option func(*Walker, *walkState)

// WithNodeHandler sets the handler called for every node.
// It runs before any kind-specific handler.
func WithNodeHandler(fn NodeHandler) Option {
	return func(w *Walker, _ *walkState) { w.onNode = fn }
}

// WithKindHandler sets the handler for nodes of the given kind.
// At most one handler per kind; a later registration replaces the earlier one.
func WithKindHandler(kind dom.Kind, fn NodeHandler) Option {
	return func(w *Walker, _ *walkState) {
		if w.onKind == nil {
			w.onKind = make(map[dom.Kind]NodeHandler)
		}
		w.onKind[kind] = fn
	}
}

// WithDocumentHandler sets the handler for Document nodes.
func WithDocumentHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindDocument, fn)
}

// WithSectionHandler sets the handler for Section nodes.
func WithSectionHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindSection, fn)
}

// WithParagraphHandler sets the handler for Paragraph nodes.
func WithParagraphHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindParagraph, fn)
}

// WithHeadingHandler sets the handler for Heading nodes.
func WithHeadingHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindHeading, fn)
}

// WithListHandler sets the handler for List nodes.
func WithListHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindList, fn)
}

// WithItemHandler sets the handler for Item nodes.
func WithItemHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindItem, fn)
}

// WithTextHandler sets the handler for Text nodes.
func WithTextHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindText, fn)
}

// WithTableHandler sets the handler for Table nodes.
func WithTableHandler(fn NodeHandler) Option {
	return WithKindHandler(dom.KindTable, fn)
}

// WithNodePostHandler sets the handler called after a node's children have
// been visited. Useful for emitting closing markup or popping scope.
func WithNodePostHandler(fn PostNodeHandler) Option {
	return func(w *Walker, _ *walkState) { w.onNodePost = fn }
}

// WithMaxDepth sets the maximum recursion depth for tree traversal.
// Default is 100. If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker, _ *walkState) {
		if depth > 0 {
			w.maxDepth = depth
		}
		// If depth <= 0, keep the default (100)
	}
}

// WithContext sets the context made available to handlers via
// WalkContext.Context.
func WithContext(ctx context.Context) Option {
	return func(_ *Walker, s *walkState) { s.ctx = ctx }
}
