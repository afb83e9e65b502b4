// Package resource flattens a client user data node tree into one buffer.
//
// Root nodes go at the head of the buffer. Inner tables are carved from the
// tail, so siblings at any depth stay contiguous and every InnerTable is a
// view into the same allocation.
package resource

import (
	"context"
	"unsafe"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/ir"
)

type (
	Table struct {
		// Nodes is the whole backing buffer.
		Nodes []ir.ResourceNode
		// Root is the prefix of Nodes holding the top level nodes.
		Root []ir.ResourceNode
	}

	key struct {
		set, binding uint32
	}

	flattener struct {
		buf []ir.ResourceNode

		immutable map[key]*api.DescriptorRangeValue
	}
)

// Descriptor sizes in dwords of one immutable sampler element.
const (
	SamplerStride      = 4
	YCbCrSamplerStride = 8
)

// Flatten translates nodes into a single generator node buffer and inlines
// immutable values matching a descriptor's set and binding.
// values is not retained; the result shares no memory with the input.
func Flatten(ctx context.Context, nodes []api.ResourceMappingNode, values []api.DescriptorRangeValue) (t Table) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "resource: flatten", "root", len(nodes), "values", len(values))
	defer func() { tr.Finish("total", len(t.Nodes)) }()

	total := api.CountNodes(nodes)
	if total == 0 {
		return Table{}
	}

	f := &flattener{
		buf:       make([]ir.ResourceNode, total),
		immutable: make(map[key]*api.DescriptorRangeValue, len(values)),
	}

	for i := range values {
		v := &values[i]

		f.immutable[key{v.Set, v.Binding}] = v
	}

	root := f.buf[:len(nodes):len(nodes)]
	inner := total

	f.setTable(nodes, root, &inner)

	if inner != len(nodes) {
		panic(errors.New("resource nodes: inner tables end at %d, root ends at %d (total %d)", inner, len(nodes), total))
	}

	if tr.If("dump_nodes") {
		t := Table{Nodes: f.buf, Root: root}

		t.Walk(func(d int, n *ir.ResourceNode) bool {
			tr.Printw("node", "depth", d, "off", t.Offset(n), "type", n.Type, "dw_off", n.OffsetInDwords, "dw_size", n.SizeInDwords,
				"set", n.Set, "binding", n.Binding, "inner", len(n.InnerTable), "immutable", len(n.ImmutableValue))

			return true
		})
	}

	return Table{Nodes: f.buf, Root: root}
}

// setTable writes nodes into dst and recurses into inner tables.
// inner is the tail cursor: space below it is still free.
func (f *flattener) setTable(nodes []api.ResourceMappingNode, dst []ir.ResourceNode, inner *int) {
	for i := range nodes {
		n := &nodes[i]
		d := &dst[i]

		d.SizeInDwords = n.SizeInDwords
		d.OffsetInDwords = n.OffsetInDwords

		switch n.Type {
		case api.DescriptorTableVaPtr:
			l := len(n.TablePtr)

			*inner -= l
			lo := *inner

			d.Type = ir.DescriptorTableVaPtr
			d.InnerTable = f.buf[lo : lo+l : lo+l]

			f.setTable(n.TablePtr, d.InnerTable, inner)
		case api.IndirectUserDataVaPtr:
			d.Type = ir.IndirectUserDataVaPtr
			d.IndirectSizeInDwords = n.UserDataPtr.SizeInDwords
		case api.StreamOutTableVaPtr:
			d.Type = ir.StreamOutTableVaPtr
			d.IndirectSizeInDwords = n.UserDataPtr.SizeInDwords
		default:
			d.Type = NodeType(n.Type)
			d.Set = n.SrdRange.Set
			d.Binding = n.SrdRange.Binding

			if d.Type == ir.ResourceNodeTypeUnknown {
				break
			}

			v, ok := f.immutable[key{d.Set, d.Binding}]
			if !ok || v.ArraySize == 0 {
				break
			}

			stride := SamplerStride
			if d.Type == ir.DescriptorYCbCrSampler {
				stride = YCbCrSamplerStride
			}

			d.ImmutableValue = immutableValue(v, stride)
			d.ImmutableStride = stride

			tlog.V("immutable").Printw("immutable value", "set", d.Set, "binding", d.Binding, "elems", v.ArraySize, "stride", stride)
		}
	}
}

// NodeType translates a descriptor node type.
// Types up to StreamOutTableVaPtr share numbering with the generator.
// Reserved and out of range types are ResourceNodeTypeUnknown.
func NodeType(t api.ResourceMappingNodeType) ir.ResourceNodeType {
	switch {
	case t == api.DescriptorYCbCrSampler:
		return ir.DescriptorYCbCrSampler
	case t > api.StreamOutTableVaPtr:
		return ir.ResourceNodeTypeUnknown
	}

	return ir.ResourceNodeType(t)
}

func _() {
	// Compile error here means NodeType needs another explicit case.
	var x [1]struct{}

	_ = x[ir.DescriptorResource-ir.ResourceNodeType(api.DescriptorResource)]
	_ = x[ir.DescriptorSampler-ir.ResourceNodeType(api.DescriptorSampler)]
	_ = x[ir.DescriptorCombinedTexture-ir.ResourceNodeType(api.DescriptorCombinedTexture)]
	_ = x[ir.DescriptorTexelBuffer-ir.ResourceNodeType(api.DescriptorTexelBuffer)]
	_ = x[ir.DescriptorFmask-ir.ResourceNodeType(api.DescriptorFmask)]
	_ = x[ir.DescriptorBuffer-ir.ResourceNodeType(api.DescriptorBuffer)]
	_ = x[ir.PushConst-ir.ResourceNodeType(api.PushConst)]
	_ = x[ir.DescriptorBufferCompact-ir.ResourceNodeType(api.DescriptorBufferCompact)]
	_ = x[ir.StreamOutTableVaPtr-ir.ResourceNodeType(api.StreamOutTableVaPtr)]
}

// immutableValue copies ArraySize descriptors of stride dwords each,
// zero-filling whatever the client value does not cover.
func immutableValue(v *api.DescriptorRangeValue, stride int) []uint32 {
	n := int(v.ArraySize)
	r := make([]uint32, n*stride)

	for i := 0; i < n; i++ {
		off := i * stride
		if off >= len(v.Value) {
			break
		}

		copy(r[off:off+stride], v.Value[off:])
	}

	return r
}

// Walk visits nodes depth first, inner tables right after their pointer node.
// Returning false from f skips the node's inner table.
func (t Table) Walk(f func(depth int, n *ir.ResourceNode) bool) {
	walk(t.Root, 0, f)
}

func walk(nodes []ir.ResourceNode, d int, f func(int, *ir.ResourceNode) bool) {
	for i := range nodes {
		n := &nodes[i]

		if !f(d, n) {
			continue
		}

		if n.Type == ir.DescriptorTableVaPtr {
			walk(n.InnerTable, d+1, f)
		}
	}
}

// Offset returns the index of n in the backing buffer or -1 if n is not in it.
func (t Table) Offset(n *ir.ResourceNode) int {
	if n == nil || len(t.Nodes) == 0 {
		return -1
	}

	size := unsafe.Sizeof(ir.ResourceNode{})
	base := uintptr(unsafe.Pointer(&t.Nodes[0]))
	p := uintptr(unsafe.Pointer(n))

	if p < base || p >= base+uintptr(len(t.Nodes))*size {
		return -1
	}

	return int((p - base) / size)
}

// Len is the number of nodes at every depth.
func (t Table) Len() int {
	return len(t.Nodes)
}
