// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "tlog.app/go/tlog"

// Bit-width bounds enforced on every PushNode call (§4.2).
const (
	maxNodes           = 1 << 24
	maxLocalID         = 1 << 24
	maxAnnotationCount = 1 << 10
	maxAnnotationStart = 1 << 20
	maxSourceLineStart = 1 << 20
	maxSourceColumn    = 1 << 17
	maxSourceLineCount = 1 << 16
)

// AnnotationInput is a single annotation to attach to a node being pushed:
// either a structured compiler-recognised attribute (IsBuiltin, e.g. the
// shader-stage attribute formatted as shader("<stage>")) or free user text.
type AnnotationInput struct {
	Text      string
	IsBuiltin bool
}

// SourceRange locates a node's declaration in its original source file.
// Pass nil to PushNode when no location is known; the node's FileNameID
// is then recorded as NoneFileID.
type SourceRange struct {
	File        string
	LineStart   uint32
	LineEnd     uint32
	ColumnStart uint32
	ColumnEnd   uint32
}

// PushNode is the producer-facing tree-construction operation (§4.2).
// parentID == 0 means "child of global scope". PushNode validates the
// documented bit-width bounds and panics (a producer-assertion error) if
// they are exceeded — that is a caller programming error, not a recoverable
// condition.
func (r *Reflection) PushNode(
	name string,
	typ NodeType,
	parentID NodeID,
	localID uint32,
	annotations []AnnotationInput,
	src *SourceRange,
) NodeID {
	assertf(typ.Valid(), "invalid node type %d", typ)
	assertf(len(r.Nodes) < maxNodes, "nodes overflow")
	assertf(localID < maxLocalID, "localId %d out of bounds", localID)

	nodeID := NodeID(len(r.Nodes))

	annotationStart := uint32(len(r.Annotations))
	for _, a := range annotations {
		assertf(len(r.Annotations) < maxAnnotationStart, "annotations overflow")
		r.Annotations = append(r.Annotations, Annotation{
			StringNonDebugID: uint32(r.InternString(a.Text, false)),
			IsBuiltin:        a.IsBuiltin,
		})
	}
	annotationCount := uint32(len(r.Annotations)) - annotationStart
	assertf(annotationCount < maxAnnotationCount, "annotation count overflow")
	assertf(annotationStart < maxAnnotationStart, "annotation start overflow")

	r.Nodes = append(r.Nodes, Node{
		Type:            typ,
		LocalID:         localID,
		ParentID:        parentID,
		AnnotationStart: annotationStart,
		AnnotationCount: annotationCount,
		ChildCount:      0,
	})

	if r.HasSymbolInfo() {
		nameID := r.InternString(name, true)
		sym := NodeSymbol{FileNameID: NoneFileID}

		if src != nil {
			assertf(src.LineStart < maxSourceLineStart, "source line start overflow")
			assertf(src.ColumnStart < maxSourceColumn, "source column start overflow")
			assertf(src.ColumnEnd < maxSourceColumn, "source column end overflow")
			lineCount := src.LineEnd - src.LineStart + 1
			assertf(lineCount < maxSourceLineCount, "source line count overflow")

			fileNameID := r.sources.intern(src.File, r.InternString(src.File, true))
			sym.FileNameID = fileNameID
			sym.SourceLineStart = src.LineStart
			sym.SourceLineCount = lineCount
			sym.SourceColumnStart = src.ColumnStart
			sym.SourceColumnEnd = src.ColumnEnd
		}
		sym.NameID = nameID
		r.NodeSymbols = append(r.NodeSymbols, sym)
	}

	// Propagate +1 to every ancestor's transitive child count, then the
	// root — mirrors the original's walk-to-root-then-increment-root shape
	// (DxcReflection.cpp PushNextNodeId) rather than recursing.
	walk := parentID
	for walk != 0 {
		p := &r.Nodes[walk]
		p.ChildCount++
		walk = p.ParentID
	}
	r.Nodes[0].ChildCount++

	tlog.V("reflect").Printw("push node", "id", nodeID, "type", typ, "parent", parentID, "local", localID)
	return nodeID
}
