/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left, right *Hash) *Hash {
	var hash [HashSize * 2]byte
	copy(hash[:HashSize], left[:])
	copy(hash[HashSize:], right[:])
	newHash := DoubleHashH(hash[:])
	return &newHash
}

// MerkleTreeRoot computes the merkle root of the given leaf hashes using the
// bitcoin merkle tree construction: leaves are paired left-to-right, with the
// last leaf duplicated when the level has an odd number of nodes.
func MerkleTreeRoot(leaves []Hash) Hash {
	if len(leaves) == 0 {
		return ZeroHash
	}
	level := make([]Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		nextLevel := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				nextLevel = append(nextLevel, *HashMerkleBranches(&level[i], &level[i+1]))
			} else {
				nextLevel = append(nextLevel, *HashMerkleBranches(&level[i], &level[i]))
			}
		}
		level = nextLevel
	}
	return level[0]
}

// BuildMerkleTreeProof returns the sibling hashes that, together with the
// first leaf, are sufficient to recompute the merkle root with
// ValidateMerkleTreeProof. The proof always walks the path for leaves[0].
func BuildMerkleTreeProof(leaves []Hash) []Hash {
	if len(leaves) <= 1 {
		return []Hash{}
	}

	level := make([]Hash, len(leaves))
	copy(level, leaves)

	proof := make([]Hash, 0, len(leaves))
	index := 0
	for len(level) > 1 {
		var sibling Hash
		if index%2 == 0 {
			if index+1 < len(level) {
				sibling = level[index+1]
			} else {
				sibling = level[index]
			}
		} else {
			sibling = level[index-1]
		}
		proof = append(proof, sibling)

		nextLevel := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				nextLevel = append(nextLevel, *HashMerkleBranches(&level[i], &level[i+1]))
			} else {
				nextLevel = append(nextLevel, *HashMerkleBranches(&level[i], &level[i]))
			}
		}
		level = nextLevel
		index /= 2
	}
	return proof
}

// ValidateMerkleTreeProof recomputes the merkle root from leaf using the
// supplied sibling proof and reports whether it matches root.
func ValidateMerkleTreeProof(leaf Hash, proof []Hash, root Hash) bool {
	current := leaf
	for _, sibling := range proof {
		current = *HashMerkleBranches(&current, &sibling)
	}
	return current == root
}
