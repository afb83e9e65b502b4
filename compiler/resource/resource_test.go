package resource

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/ir"
)

func TestFlattenEmpty(t *testing.T) {
	ctx := context.Background()

	tb := Flatten(ctx, nil, nil)
	assert.Equal(t, 0, tb.Len())
	assert.Len(t, tb.Root, 0)

	tb = Flatten(ctx, []api.ResourceMappingNode{{Type: api.DescriptorTableVaPtr, SizeInDwords: 1}}, nil)
	require.Equal(t, 1, tb.Len())
	require.Len(t, tb.Root, 1)
	assert.Equal(t, ir.DescriptorTableVaPtr, tb.Root[0].Type)
	assert.Len(t, tb.Root[0].InnerTable, 0)
}

func TestFlattenLayout(t *testing.T) {
	ctx := context.Background()

	nodes := []api.ResourceMappingNode{
		{Type: api.PushConst, SizeInDwords: 4, OffsetInDwords: 0},
		{Type: api.DescriptorTableVaPtr, SizeInDwords: 1, OffsetInDwords: 4, TablePtr: []api.ResourceMappingNode{
			{Type: api.DescriptorBuffer, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 0, Binding: 0}},
			{Type: api.DescriptorTableVaPtr, SizeInDwords: 1, OffsetInDwords: 4, TablePtr: []api.ResourceMappingNode{
				{Type: api.DescriptorSampler, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 1, Binding: 3}},
			}},
		}},
		{Type: api.IndirectUserDataVaPtr, SizeInDwords: 1, OffsetInDwords: 5, UserDataPtr: api.UserDataPtr{SizeInDwords: 16}},
		{Type: api.StreamOutTableVaPtr, SizeInDwords: 1, OffsetInDwords: 6, UserDataPtr: api.UserDataPtr{SizeInDwords: 8}},
	}

	tb := Flatten(ctx, nodes, nil)
	require.Equal(t, 7, tb.Len())
	require.Len(t, tb.Root, 4)

	assert.Equal(t, 0, tb.Offset(&tb.Root[0]))
	assert.Equal(t, ir.PushConst, tb.Root[0].Type)
	assert.Equal(t, uint32(4), tb.Root[0].SizeInDwords)

	tab := tb.Root[1].InnerTable
	require.Len(t, tab, 2)
	assert.Equal(t, 5, tb.Offset(&tab[0]))
	assert.Equal(t, ir.DescriptorBuffer, tab[0].Type)

	sub := tab[1].InnerTable
	require.Len(t, sub, 1)
	assert.Equal(t, 4, tb.Offset(&sub[0]))
	assert.Equal(t, ir.DescriptorSampler, sub[0].Type)
	assert.Equal(t, uint32(1), sub[0].Set)
	assert.Equal(t, uint32(3), sub[0].Binding)

	assert.Equal(t, ir.IndirectUserDataVaPtr, tb.Root[2].Type)
	assert.Equal(t, uint32(16), tb.Root[2].IndirectSizeInDwords)
	assert.Equal(t, ir.StreamOutTableVaPtr, tb.Root[3].Type)
	assert.Equal(t, uint32(8), tb.Root[3].IndirectSizeInDwords)
	assert.Equal(t, uint32(6), tb.Root[3].OffsetInDwords)

	assert.Equal(t, len(tab), cap(tab))
	assert.Equal(t, len(sub), cap(sub))
}

func TestFlattenRandomForests(t *testing.T) {
	ctx := context.Background()
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		depth := i % 5
		nodes := randForest(r, depth, r.Intn(9))

		tb := Flatten(ctx, nodes, nil)

		total := api.CountNodes(nodes)
		require.Equal(t, total, tb.Len(), "iter %d", i)
		require.Len(t, tb.Root, len(nodes))

		if total == 0 {
			continue
		}

		used := make([]int, total)

		for j := range tb.Root {
			used[j]++
		}

		visited := 0

		tb.Walk(func(d int, n *ir.ResourceNode) bool {
			visited++

			if n.Type != ir.DescriptorTableVaPtr || len(n.InnerTable) == 0 {
				return true
			}

			lo := tb.Offset(&n.InnerTable[0])
			require.True(t, lo >= len(nodes), "inner table overlaps root region: %d", lo)
			require.Equal(t, lo+len(n.InnerTable)-1, tb.Offset(&n.InnerTable[len(n.InnerTable)-1]))

			for k := range n.InnerTable {
				used[lo+k]++
			}

			return true
		})

		assert.Equal(t, total, visited, "iter %d", i)

		for j, u := range used {
			assert.Equal(t, 1, u, "iter %d slot %d", i, j)
		}

		assertSame(t, nodes, tb.Root)
	}
}

func TestFlattenImmutable(t *testing.T) {
	ctx := context.Background()

	values := []api.DescriptorRangeValue{
		{Type: api.DescriptorSampler, Set: 2, Binding: 5, ArraySize: 2, Value: []uint32{1, 2, 3, 4, 5, 6, 7, 8}},
		{Type: api.DescriptorSampler, Set: 2, Binding: 6, ArraySize: 0, Value: []uint32{9, 9, 9, 9}},
		{Type: api.DescriptorYCbCrSampler, Set: 3, Binding: 0, ArraySize: 2, Value: []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	nodes := []api.ResourceMappingNode{
		{Type: api.DescriptorTableVaPtr, SizeInDwords: 1, TablePtr: []api.ResourceMappingNode{
			{Type: api.DescriptorSampler, SizeInDwords: 8, SrdRange: api.SrdRange{Set: 2, Binding: 5}},
			{Type: api.DescriptorSampler, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 2, Binding: 6}},
			{Type: api.DescriptorSampler, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 2, Binding: 7}},
		}},
		{Type: api.DescriptorYCbCrSampler, SizeInDwords: 16, OffsetInDwords: 1, SrdRange: api.SrdRange{Set: 3, Binding: 0}},
	}

	tb := Flatten(ctx, nodes, values)
	require.Equal(t, 5, tb.Len())

	tab := tb.Root[0].InnerTable
	require.Len(t, tab, 3)

	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6, 7, 8}, tab[0].ImmutableValue)
	assert.Equal(t, 4, tab[0].ImmutableStride)

	assert.Nil(t, tab[1].ImmutableValue, "zero array size")
	assert.Nil(t, tab[2].ImmutableValue, "no value")

	y := tb.Root[1]
	assert.Equal(t, ir.DescriptorYCbCrSampler, y.Type)
	assert.Equal(t, 8, y.ImmutableStride)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 0, 0, 0, 0, 0}, y.ImmutableValue)

	values[0].Value[0] = 100
	assert.Equal(t, uint32(1), tab[0].ImmutableValue[0], "value must be copied")
}

func TestNodeType(t *testing.T) {
	for x := api.DescriptorResource; x <= api.StreamOutTableVaPtr; x++ {
		assert.Equal(t, ir.ResourceNodeType(x), NodeType(x), "%v", x)
	}

	assert.Equal(t, ir.DescriptorYCbCrSampler, NodeType(api.DescriptorYCbCrSampler))

	for _, x := range []api.ResourceMappingNodeType{
		api.ResourceMappingNodeTypeUnknown,
		api.DescriptorReserved12,
		api.DescriptorReserved13,
		api.ResourceMappingNodeTypeCount,
		api.ResourceMappingNodeTypeCount + 7,
	} {
		assert.Equal(t, ir.ResourceNodeTypeUnknown, NodeType(x), "%v", x)
	}
}

func TestFlattenReservedNoImmutable(t *testing.T) {
	tb := Flatten(context.Background(), []api.ResourceMappingNode{
		{Type: api.DescriptorReserved12, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 1, Binding: 2}},
		{Type: api.DescriptorReserved13, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 1, Binding: 2}},
		{Type: api.DescriptorSampler, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 1, Binding: 2}},
	}, []api.DescriptorRangeValue{
		{Set: 1, Binding: 2, ArraySize: 1, Value: []uint32{1, 2, 3, 4}},
	})

	require.Len(t, tb.Root, 3)

	for _, n := range tb.Root[:2] {
		assert.Equal(t, ir.ResourceNodeTypeUnknown, n.Type)
		assert.Nil(t, n.ImmutableValue)
		assert.Zero(t, n.ImmutableStride)
	}

	assert.Equal(t, []uint32{1, 2, 3, 4}, tb.Root[2].ImmutableValue)
}

func TestOffsetOutside(t *testing.T) {
	tb := Flatten(context.Background(), []api.ResourceMappingNode{{Type: api.PushConst}}, nil)

	var n ir.ResourceNode

	assert.Equal(t, -1, tb.Offset(&n))
	assert.Equal(t, -1, tb.Offset(nil))
	assert.Equal(t, -1, Table{}.Offset(&n))
}

func assertSame(t *testing.T, want []api.ResourceMappingNode, got []ir.ResourceNode) {
	t.Helper()

	require.Len(t, got, len(want))

	for i := range want {
		w, g := &want[i], &got[i]

		assert.Equal(t, NodeType(w.Type), g.Type)
		assert.Equal(t, w.SizeInDwords, g.SizeInDwords)
		assert.Equal(t, w.OffsetInDwords, g.OffsetInDwords)

		if w.Type == api.DescriptorTableVaPtr {
			assertSame(t, w.TablePtr, g.InnerTable)
		}
	}
}

func randForest(r *rand.Rand, depth, n int) []api.ResourceMappingNode {
	if n == 0 {
		return nil
	}

	nodes := make([]api.ResourceMappingNode, n)

	for i := range nodes {
		nd := &nodes[i]
		nd.OffsetInDwords = uint32(i)
		nd.SizeInDwords = uint32(1 + r.Intn(4))

		if depth > 0 && r.Intn(3) == 0 {
			nd.Type = api.DescriptorTableVaPtr
			nd.TablePtr = randForest(r, depth-1, r.Intn(9))

			continue
		}

		nd.Type = api.DescriptorResource + api.ResourceMappingNodeType(r.Intn(6))
		nd.SrdRange = api.SrdRange{Set: uint32(r.Intn(4)), Binding: uint32(r.Intn(16))}
	}

	return nodes
}
