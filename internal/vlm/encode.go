package vlm

import (
	"encoding/base64"
	"fmt"
	"os"
)

// EncodeImageFile reads an image and returns it as a base64 data URL suitable
// for a chat completion image part. The jpeg media type is used regardless of
// the actual encoding; vision endpoints sniff the payload.
func EncodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
