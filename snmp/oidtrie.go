package snmp

// OidTrie indexes a set of OIDs as a tree of arcs. Lookups cost O(n) in
// the length of the queried OID regardless of how many OIDs were
// inserted, which is what a table-walk consumer needs when deciding
// whether each returned identifier is still inside a requested subtree.
type OidTrie struct {
	children map[uint32]*OidTrie
}

// NewOidTrie returns an empty trie.
func NewOidTrie() *OidTrie {
	return &OidTrie{}
}

// BuildTrie builds a trie from a list of OIDs.
func BuildTrie(oids []Oid) *OidTrie {
	root := NewOidTrie()
	for _, oid := range oids {
		root.Insert(oid)
	}
	return root
}

// Insert adds one OID to the trie.
func (t *OidTrie) Insert(oid Oid) {
	current := t
	for _, arc := range oid {
		if current.children == nil {
			current.children = make(map[uint32]*OidTrie)
		}
		child, ok := current.children[arc]
		if !ok {
			child = NewOidTrie()
			current.children[arc] = child
		}
		current = child
	}
}

// NodeExist reports whether the OID is a known node: either an inserted
// OID, a prefix of one, or an extension of an inserted leaf.
func (t *OidTrie) NodeExist(oid Oid) bool {
	return t.exist(oid, false)
}

// LeafExist reports whether the OID reaches or extends past an inserted
// leaf, i.e. it identifies one of the inserted OIDs or an instance under
// one. A strict prefix of an inserted OID is not a leaf.
func (t *OidTrie) LeafExist(oid Oid) bool {
	return t.exist(oid, true)
}

func (t *OidTrie) exist(oid Oid, wantLeaf bool) bool {
	if len(oid) == 0 {
		return false
	}
	current := t
	for _, arc := range oid {
		child, ok := current.children[arc]
		if !ok {
			return false
		}
		if len(child.children) == 0 {
			return true
		}
		current = child
	}
	// Walked the whole OID without passing a leaf.
	return !wantLeaf
}
