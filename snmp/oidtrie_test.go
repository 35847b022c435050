package snmp

import "testing"

func buildTestTrie(t *testing.T) *OidTrie {
	t.Helper()
	return BuildTrie([]Oid{
		{1, 3, 6, 1, 2, 1, 1, 1},    // sysDescr
		{1, 3, 6, 1, 2, 1, 2, 2, 1}, // ifEntry
	})
}

func TestOidTrieNodeExist(t *testing.T) {
	trie := buildTestTrie(t)

	tests := []struct {
		name string
		oid  Oid
		want bool
	}{
		{"inserted oid", Oid{1, 3, 6, 1, 2, 1, 1, 1}, true},
		{"prefix of inserted", Oid{1, 3, 6, 1}, true},
		{"instance under leaf", Oid{1, 3, 6, 1, 2, 1, 1, 1, 0}, true},
		{"diverging arc", Oid{1, 4}, false},
		{"unknown sibling", Oid{1, 3, 6, 1, 2, 1, 3}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trie.NodeExist(tt.oid); got != tt.want {
				t.Errorf("NodeExist(%v) = %v, want %v", tt.oid, got, tt.want)
			}
		})
	}
}

func TestOidTrieLeafExist(t *testing.T) {
	trie := buildTestTrie(t)

	tests := []struct {
		name string
		oid  Oid
		want bool
	}{
		{"inserted oid", Oid{1, 3, 6, 1, 2, 1, 1, 1}, true},
		{"column under row", Oid{1, 3, 6, 1, 2, 1, 2, 2, 1, 10, 1}, true},
		{"strict prefix", Oid{1, 3, 6, 1}, false},
		{"unknown", Oid{1, 2}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trie.LeafExist(tt.oid); got != tt.want {
				t.Errorf("LeafExist(%v) = %v, want %v", tt.oid, got, tt.want)
			}
		})
	}
}

func TestOidTrieInsertAfterBuild(t *testing.T) {
	trie := buildTestTrie(t)
	trie.Insert(Oid{1, 3, 6, 1, 4, 1, 9})

	if !trie.LeafExist(Oid{1, 3, 6, 1, 4, 1, 9, 9, 109}) {
		t.Error("LeafExist() = false for instance under a later insert")
	}
}
