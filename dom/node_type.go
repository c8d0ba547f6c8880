package dom

import "fmt"

// NodeType identifies the kind of a node. Values follow the DOM numbering.
type NodeType int

const (
	ElementNode NodeType = iota + 1
	AttributeNode
	TextNode
	CDataSectionNode
	_ // entity reference, historical
	_ // entity, historical
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

var nodeTypeNames = map[NodeType]string{
	ElementNode:               "Element",
	AttributeNode:             "Attribute",
	TextNode:                  "Text",
	CDataSectionNode:          "CDataSection",
	ProcessingInstructionNode: "ProcessingInstruction",
	CommentNode:               "Comment",
	DocumentNode:              "Document",
	DocumentTypeNode:          "DocumentType",
	DocumentFragmentNode:      "DocumentFragment",
}

func (t NodeType) String() string {
	s, ok := nodeTypeNames[t]
	if ok {
		return s
	}
	return "<unknown node type>"
}

func (t NodeType) MarshalText() ([]byte, error) {
	s, ok := nodeTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unrecognized node type %d", int(t))
	}
	return []byte(s), nil
}

func (t *NodeType) UnmarshalText(d []byte) error {
	for nt, s := range nodeTypeNames {
		if s == string(d) {
			*t = nt
			return nil
		}
	}
	return fmt.Errorf("unrecognized node type %q", d)
}

func NodeTypes() []NodeType {
	return []NodeType{
		ElementNode,
		AttributeNode,
		TextNode,
		CDataSectionNode,
		ProcessingInstructionNode,
		CommentNode,
		DocumentNode,
		DocumentTypeNode,
		DocumentFragmentNode,
	}
}

// IsLeaf reports whether nodes of type t never have children.
func (t NodeType) IsLeaf() bool {
	switch t {
	case ElementNode, DocumentNode, DocumentFragmentNode:
		return false
	default:
		return true
	}
}
