package model

import "strings"

// Category is a node of the item category tree.
type Category struct {
	CategoryID int        `json:"category_id"`
	Name       string     `json:"name"`
	ParentID   *int       `json:"parent_id"`
	ItemCount  int        `json:"item_count,omitempty"`
	Children   []Category `json:"children,omitempty"`
}

// CategoryOption is a flattened category for select lists.
type CategoryOption struct {
	ID    int
	Label string
	Depth int
}

// FlattenCategories walks the tree depth-first, labelling each node with
// its ancestors' names joined by " > ".
func FlattenCategories(tree []Category) []CategoryOption {
	var out []CategoryOption
	var walk func(nodes []Category, prefix string, depth int)
	walk = func(nodes []Category, prefix string, depth int) {
		for _, c := range nodes {
			out = append(out, CategoryOption{ID: c.CategoryID, Label: prefix + c.Name, Depth: depth})
			if len(c.Children) > 0 {
				walk(c.Children, prefix+c.Name+" > ", depth+1)
			}
		}
	}
	walk(tree, "", 0)
	return out
}

// CategoryInput is the body of POST /categories and PUT /categories/{id}.
type CategoryInput struct {
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id,omitempty"`
}

// Validate trims the name and rejects an empty one.
func (in *CategoryInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return newValidationError("name", MsgCategoryName)
	}
	return nil
}
