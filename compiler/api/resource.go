package api

import (
	"strconv"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
)

type (
	ResourceMappingNodeType uint32

	// ResourceMappingNode is one client-owned user data node.
	// Which of SrdRange, TablePtr and UserDataPtr is meaningful depends on Type.
	ResourceMappingNode struct {
		Type           ResourceMappingNodeType `yaml:"type"`
		SizeInDwords   uint32                  `yaml:"size"`
		OffsetInDwords uint32                  `yaml:"offset"`

		SrdRange    SrdRange              `yaml:"srd,omitempty"`
		TablePtr    []ResourceMappingNode `yaml:"table,omitempty"`
		UserDataPtr UserDataPtr           `yaml:"user_data,omitempty"`
	}

	SrdRange struct {
		Set     uint32 `yaml:"set"`
		Binding uint32 `yaml:"binding"`
	}

	UserDataPtr struct {
		SizeInDwords uint32 `yaml:"size"`
	}

	// DescriptorRangeValue is an immutable descriptor value for a (set, binding).
	// Value holds ArraySize elements, 4 dwords each (8 for YCbCr samplers).
	DescriptorRangeValue struct {
		Type      ResourceMappingNodeType `yaml:"type"`
		Set       uint32                  `yaml:"set"`
		Binding   uint32                  `yaml:"binding"`
		ArraySize uint32                  `yaml:"array_size"`
		Value     []uint32                `yaml:"value,flow"`
	}
)

const (
	ResourceMappingNodeTypeUnknown ResourceMappingNodeType = iota
	DescriptorResource
	DescriptorSampler
	DescriptorCombinedTexture
	DescriptorTexelBuffer
	DescriptorFmask
	DescriptorBuffer
	DescriptorTableVaPtr
	IndirectUserDataVaPtr
	PushConst
	DescriptorBufferCompact
	StreamOutTableVaPtr
	DescriptorReserved12
	DescriptorReserved13
	DescriptorYCbCrSampler

	ResourceMappingNodeTypeCount
)

var nodeTypeNames = [ResourceMappingNodeTypeCount]string{
	ResourceMappingNodeTypeUnknown: "unknown",
	DescriptorResource:             "resource",
	DescriptorSampler:              "sampler",
	DescriptorCombinedTexture:      "combined_texture",
	DescriptorTexelBuffer:          "texel_buffer",
	DescriptorFmask:                "fmask",
	DescriptorBuffer:               "buffer",
	DescriptorTableVaPtr:           "table",
	IndirectUserDataVaPtr:          "indirect_user_data",
	PushConst:                      "push_const",
	DescriptorBufferCompact:        "buffer_compact",
	StreamOutTableVaPtr:            "stream_out_table",
	DescriptorReserved12:           "reserved12",
	DescriptorReserved13:           "reserved13",
	DescriptorYCbCrSampler:         "ycbcr_sampler",
}

func (t ResourceMappingNodeType) String() string {
	if t < ResourceMappingNodeTypeCount {
		return nodeTypeNames[t]
	}

	return "ResourceMappingNodeType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

func (t *ResourceMappingNodeType) UnmarshalYAML(n *yaml.Node) error {
	for i, name := range nodeTypeNames {
		if name == n.Value {
			*t = ResourceMappingNodeType(i)
			return nil
		}
	}

	x, err := strconv.ParseUint(n.Value, 0, 32)
	if err != nil {
		return errors.New("line %d: unknown node type: %q", n.Line, n.Value)
	}

	*t = ResourceMappingNodeType(x)

	return nil
}

// CountNodes returns the number of nodes in the forest at every depth.
func CountNodes(nodes []ResourceMappingNode) (n int) {
	for _, node := range nodes {
		n++

		if node.Type == DescriptorTableVaPtr {
			n += CountNodes(node.TablePtr)
		}
	}

	return n
}
