package slug

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"My%20First%20Post", "my-first-post"},
		{"under_scored_name", "under-scored-name"},
		{"Mixed CASE and  Spaces", "mixed-case-and-spaces"},
		{"photo (1).JPG", "photo-1-.jpg"},
		{"--already--dashed--", "already-dashed"},
		{"čitaj/ovo?sad!", "itaj-ovo-sad"},
		{"keep.dots-and-dashes.png", "keep.dots-and-dashes.png"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIsStable(t *testing.T) {
	in := "Some Title: With %20 And/Slashes"
	first := Normalize(in)
	for i := 0; i < 3; i++ {
		if got := Normalize(in); got != first {
			t.Fatalf("Normalize not stable: %q vs %q", got, first)
		}
	}
}
