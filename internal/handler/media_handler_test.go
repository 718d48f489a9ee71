package handler

import (
	"testing"

	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

func TestUploadContentTypeValidation(t *testing.T) {
	v := utils.NewValidator()

	tests := []struct {
		name string
		req  interface{}
		ok   bool
	}{
		{"jpeg image", imageUpload{ContentType: "image/jpeg"}, true},
		{"webp image", imageUpload{ContentType: "image/webp"}, true},
		{"pdf is not an image", imageUpload{ContentType: "application/pdf"}, false},
		{"missing content type", imageUpload{}, false},
		{"mp3 audio", musicUpload{ContentType: "audio/mpeg"}, true},
		{"aac audio", musicUpload{ContentType: "audio/aac"}, true},
		{"video is not audio", musicUpload{ContentType: "video/mp4"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err == nil) != tt.ok {
				t.Errorf("Struct(%+v) err = %v, want ok=%v", tt.req, err, tt.ok)
			}
		})
	}
}
