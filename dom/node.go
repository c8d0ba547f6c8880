package dom

// Node is the identity and content contract shared by all node kinds.
type Node interface {
	NodeName() string
	NodeType() NodeType
	NodeValue() string
	SetNodeValue(v string)
	TextContent() string
	SetTextContent(v string)
}

// Navigator is the tree navigation contract for node kinds which have a
// position in a tree. Methods without a meaningful answer for a node kind
// return an error wrapping ErrNotSupported.
type Navigator interface {
	ParentNode() (Node, error)
	ParentElement() (*Element, error)
	FirstChild() (Node, error)
	LastChild() (Node, error)
	NextSibling() (Node, error)
	PreviousSibling() (Node, error)
	ChildNodes() (*NodeList[Node], error)
	HasChildNodes() bool
	GetRootNode() (Node, error)
	IsConnected() bool

	AppendChild(child Node) (Node, error)
	InsertBefore(node, child Node) (Node, error)
	RemoveChild(child Node) (Node, error)
	ReplaceChild(node, child Node) (Node, error)
	Normalize() error
	CloneNode(deep bool) (Node, error)

	Contains(other Node) (bool, error)
	IsSameNode(other Node) (bool, error)
	IsEqualNode(other Node) (bool, error)

	LookupPrefix(namespace string) (string, error)
	LookupNamespaceURI(prefix string) (string, error)
	IsDefaultNamespace(namespace string) (bool, error)
}

// TreeNode is a Node which also implements Navigator.
type TreeNode interface {
	Node
	Navigator
}

// Leaf implements Navigator for node kinds without a tree position. It
// reports no children, is never connected, and answers everything else with
// ErrNotSupported. Type names the embedding node kind in errors.
type Leaf struct {
	Type NodeType
}

var _ Navigator = Leaf{}

func (l Leaf) ParentNode() (Node, error)        { return nil, notSupported(l.Type, "ParentNode") }
func (l Leaf) ParentElement() (*Element, error) { return nil, notSupported(l.Type, "ParentElement") }
func (l Leaf) FirstChild() (Node, error)        { return nil, notSupported(l.Type, "FirstChild") }
func (l Leaf) LastChild() (Node, error)         { return nil, notSupported(l.Type, "LastChild") }
func (l Leaf) NextSibling() (Node, error)       { return nil, notSupported(l.Type, "NextSibling") }
func (l Leaf) PreviousSibling() (Node, error)   { return nil, notSupported(l.Type, "PreviousSibling") }
func (l Leaf) GetRootNode() (Node, error)       { return nil, notSupported(l.Type, "GetRootNode") }
func (l Leaf) HasChildNodes() bool              { return false }
func (l Leaf) IsConnected() bool                { return false }

func (l Leaf) ChildNodes() (*NodeList[Node], error) {
	return nil, notSupported(l.Type, "ChildNodes")
}

func (l Leaf) AppendChild(Node) (Node, error) {
	return nil, notSupported(l.Type, "AppendChild")
}

func (l Leaf) InsertBefore(_, _ Node) (Node, error) {
	return nil, notSupported(l.Type, "InsertBefore")
}

func (l Leaf) RemoveChild(Node) (Node, error) {
	return nil, notSupported(l.Type, "RemoveChild")
}

func (l Leaf) ReplaceChild(_, _ Node) (Node, error) {
	return nil, notSupported(l.Type, "ReplaceChild")
}

func (l Leaf) Normalize() error { return notSupported(l.Type, "Normalize") }

func (l Leaf) CloneNode(bool) (Node, error) {
	return nil, notSupported(l.Type, "CloneNode")
}

func (l Leaf) Contains(Node) (bool, error) {
	return false, notSupported(l.Type, "Contains")
}

func (l Leaf) IsSameNode(Node) (bool, error) {
	return false, notSupported(l.Type, "IsSameNode")
}

func (l Leaf) IsEqualNode(Node) (bool, error) {
	return false, notSupported(l.Type, "IsEqualNode")
}

func (l Leaf) LookupPrefix(string) (string, error) {
	return "", notSupported(l.Type, "LookupPrefix")
}

func (l Leaf) LookupNamespaceURI(string) (string, error) {
	return "", notSupported(l.Type, "LookupNamespaceURI")
}

func (l Leaf) IsDefaultNamespace(string) (bool, error) {
	return false, notSupported(l.Type, "IsDefaultNamespace")
}
