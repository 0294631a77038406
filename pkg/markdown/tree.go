// File: pkg/markdown/tree.go
package markdown

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

// Tree renders slash-separated relative paths as an indented tree rooted at
// rootName. Directories are listed before files, both alphabetically.
func Tree(rootName string, relPaths []string) string {
	root := &treeNode{name: rootName, children: map[string]*treeNode{}}
	for _, rel := range relPaths {
		node := root
		for _, part := range strings.Split(rel, "/") {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			node = child
		}
	}

	lines := []string{rootName + "/"}
	lines = append(lines, renderTree(root, "")...)
	return strings.Join(lines, "\n")
}

func renderTree(node *treeNode, prefix string) []string {
	entries := make([]*treeNode, 0, len(node.children))
	for _, c := range node.children {
		entries = append(entries, c)
	}

	// Sort entries: directories first, then files, alphabetically
	sort.Slice(entries, func(i, j int) bool {
		iDir, jDir := len(entries[i].children) > 0, len(entries[j].children) > 0
		if iDir != jDir {
			return iDir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if len(entry.children) > 0 {
			output = append(output, prefix+connector+entry.name+"/")
			output = append(output, renderTree(entry, prefix+extension)...)
		} else {
			output = append(output, prefix+connector+entry.name)
		}
	}
	return output
}
