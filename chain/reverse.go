package chain

// ReverseRootDomain is the reserved subtree for reverse records.
const ReverseRootDomain = "addr.reverse"

// AddrReverseNode is Namehash(ReverseRootDomain), the parent of every
// reverse record node.
var AddrReverseNode = Namehash(ReverseRootDomain)

// ReverseName renders the full reverse name of an address, e.g.
// "112234455c3a32fd11230c42e7bccd4a84e02010.addr.reverse".
func ReverseName(addr Address) string {
	return addr.HexLabel() + "." + ReverseRootDomain
}

// ReverseNode derives the reverse record node of an address.
func ReverseNode(addr Address) NodeID {
	return HashNode(AddrReverseNode, addr.HexLabel())
}
