package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// treeNode is one directory level of the index while it is turned into
// tree objects.
type treeNode struct {
	files    map[string]object.TreeEntry
	children map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{
		files:    make(map[string]object.TreeEntry),
		children: make(map[string]*treeNode),
	}
}

func (n *treeNode) insert(parts []string, entry object.TreeEntry) {
	if len(parts) == 1 {
		entry.Name = parts[0]
		n.files[parts[0]] = entry
		return
	}
	child, ok := n.children[parts[0]]
	if !ok {
		child = newTreeNode()
		n.children[parts[0]] = child
	}
	child.insert(parts[1:], entry)
}

// WriteTree stores the current index as tree objects and returns the hash of
// the root tree.
func (r *Repo) WriteTree() (plumbing.Hash, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("read index: %w", err)
	}

	root := newTreeNode()
	for _, e := range idx.Entries {
		// Entries of a fully merged path are always stage 0.
		if e.Stage != 0 {
			return plumbing.ZeroHash, fmt.Errorf("write tree: unmerged path %s", e.Name)
		}
		root.insert(strings.Split(e.Name, "/"), object.TreeEntry{Mode: e.Mode, Hash: e.Hash})
	}

	hash, err := r.storeTree(root)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("write tree: %w", err)
	}
	return hash, nil
}

func (r *Repo) storeTree(n *treeNode) (plumbing.Hash, error) {
	entries := make([]object.TreeEntry, 0, len(n.files)+len(n.children))
	for _, e := range n.files {
		entries = append(entries, e)
	}
	for name, child := range n.children {
		h, err := r.storeTree(child)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		entries = append(entries, object.TreeEntry{Name: name, Mode: filemode.Dir, Hash: h})
	}
	sort.Slice(entries, func(i, j int) bool {
		return treeSortName(entries[i]) < treeSortName(entries[j])
	})

	tree := &object.Tree{Entries: entries}
	obj := r.repo.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode tree: %w", err)
	}
	return r.repo.Storer.SetEncodedObject(obj)
}

// treeSortName orders directories as if their names ended in "/", which is
// how git sorts tree entries.
func treeSortName(e object.TreeEntry) string {
	if e.Mode == filemode.Dir {
		return e.Name + "/"
	}
	return e.Name
}
