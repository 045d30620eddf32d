package store

import (
	"fmt"

	"stateful-stream/pkg/commtypes"
)

// WindowNamespace derives the namespace key that scopes timers and state
// partitions to one window. The key is built from the serialized window so
// that it is stable across deliveries and across processes.
func WindowNamespace(winSerde commtypes.Serde, window commtypes.Window) (string, error) {
	enc, err := winSerde.Encode(window)
	if err != nil {
		return "", fmt.Errorf("encode window for namespace: %v", err)
	}
	return fmt.Sprintf("win/%x", enc), nil
}

func partitionKey(namespace string, tag StateTag) string {
	return fmt.Sprintf("%s/%s", namespace, tag.String())
}
