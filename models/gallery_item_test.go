package models

import "testing"

func TestInferMediaType(t *testing.T) {
	tests := []struct {
		url  string
		want MediaType
	}{
		{"https://cdn.example.com/clips/wish.mp4", MediaTypeVideo},
		{"https://cdn.example.com/clips/wish.MOV", MediaTypeVideo},
		{"https://cdn.example.com/photos/wish.jpg", MediaTypeImage},
		{"https://cdn.example.com/photos/wish.png?w=800", MediaTypeImage},
		{"https://cdn.example.com/clips/wish.webm?t=10", MediaTypeVideo},
		{"https://example.com/watch", MediaTypeImage}, // no extension falls back to image
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := InferMediaType(tt.url); got != tt.want {
				t.Errorf("InferMediaType(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestGalleryCategoryIsValid(t *testing.T) {
	for _, c := range []GalleryCategory{CategoryWishesGranted, CategoryEvents, CategoryBehindScenes} {
		if !c.IsValid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if GalleryCategory("portraits").IsValid() {
		t.Error("unknown category should be invalid")
	}
}
