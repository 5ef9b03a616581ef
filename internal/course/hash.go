package course

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ComputeID derives the content hash that becomes an assignment's ID: the
// SHA-256 hex digest of the canonical JSON serialization of the assignment
// with the ID field cleared. encoding/json emits struct fields in declaration
// order and map keys sorted, so identical logical content hashes identically
// across processes.
func ComputeID(a *Assignment) (string, error) {
	shadow := *a
	shadow.ID = ""

	data, err := json.Marshal(&shadow)
	if err != nil {
		return "", fmt.Errorf("serialize assignment for hashing: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
