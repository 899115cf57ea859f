package components

import "slices"

// ClassList is the ordered set of class tags applied to a container.
type ClassList struct {
	items []string
}

// Add appends a tag if it is not already present.
func (c *ClassList) Add(tag string) {
	if tag == "" || c.Contains(tag) {
		return
	}
	c.items = append(c.items, tag)
}

// Remove drops a tag if present.
func (c *ClassList) Remove(tag string) {
	c.items = slices.DeleteFunc(c.items, func(item string) bool { return item == tag })
}

// Contains reports whether tag is in the list.
func (c *ClassList) Contains(tag string) bool {
	return slices.Contains(c.items, tag)
}

// Items returns a copy of the tags in insertion order.
func (c *ClassList) Items() []string {
	return slices.Clone(c.items)
}

// Len returns the number of tags.
func (c *ClassList) Len() int {
	return len(c.items)
}
