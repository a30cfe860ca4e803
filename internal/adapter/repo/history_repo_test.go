package repo

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalElidedReplacesDataURLs(t *testing.T) {
	output := map[string]any{
		"image_url":  "data:image/png;base64,AAAA",
		"status":     "success",
		"model_used": "dall-e-3-premium+text_overlay",
		"nested": map[string]any{
			"qr_code_url": "data:image/png;base64,BBBB",
			"note":        "plain text stays",
		},
	}
	raw, err := marshalElided(output)
	if err != nil {
		t.Fatalf("marshalElided: %v", err)
	}
	if strings.Contains(string(raw), "base64,") {
		t.Fatalf("image payload not elided: %s", raw)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["image_url"] != elidedImageMarker {
		t.Fatalf("image_url = %v", decoded["image_url"])
	}
	nested := decoded["nested"].(map[string]any)
	if nested["qr_code_url"] != elidedImageMarker {
		t.Fatalf("nested qr_code_url = %v", nested["qr_code_url"])
	}
	if nested["note"] != "plain text stays" {
		t.Fatalf("note = %v", nested["note"])
	}
	if decoded["model_used"] != "dall-e-3-premium+text_overlay" {
		t.Fatalf("model_used = %v", decoded["model_used"])
	}
}
