package provenance

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
	"lukechampine.com/blake3"
)

// computeID hashes (op, ordered inputs, canonicalized meta, policy
// signature) into a stable content id - spec.md §4.7: "equal inputs always
// yield equal ids". hashstructure canonicalizes meta (map key order, nested
// structures) into a single uint64 first, since meta may hold arbitrary
// JSON-ish values that blake3.Sum256 cannot hash directly without a
// deterministic byte encoding; blake3 then mixes that with op/inputs/policy.
func computeID(op string, inputs []NodeID, meta map[string]any, policySignature string) (NodeID, error) {
	metaHash, err := hashstructure.Hash(meta, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("provenance: hashing meta: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(op)
	buf.WriteByte(0)
	for _, in := range inputs {
		buf.WriteString(string(in))
		buf.WriteByte(0)
	}
	fmt.Fprintf(&buf, "%x", metaHash)
	buf.WriteByte(0)
	buf.WriteString(policySignature)

	sum := blake3.Sum256(buf.Bytes())
	return NodeID(hex.EncodeToString(sum[:])), nil
}
