package dom

// Element is a tag name with an attribute collection.
type Element struct {
	tagName    string
	attributes *NamedNodeMap
}

func NewElement(tagName string) *Element {
	return &Element{
		tagName:    tagName,
		attributes: NewNamedNodeMap(),
	}
}

func (e *Element) TagName() string {
	return e.tagName
}

// Attributes returns the element's attribute collection. It is the
// collection itself, not a copy.
func (e *Element) Attributes() *NamedNodeMap {
	return e.attributes
}

func (e *Element) GetAttribute(name string) (string, bool) {
	a, ok := e.attributes.GetNamedItem(name)
	if !ok {
		return "", false
	}
	return a.Value(), true
}

func (e *Element) SetAttribute(name, value string) {
	e.attributes.SetNamedItem(NewAttr(name, value))
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attributes.GetNamedItem(name)
	return ok
}

// RemoveAttribute removes the named attribute and reports whether it was
// present.
func (e *Element) RemoveAttribute(name string) bool {
	_, ok := e.attributes.RemoveNamedItem(name)
	return ok
}

func (e *Element) AttributeNames() []string {
	return e.attributes.Names()
}
