package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Multiple---Separators___Here", "multiple-separators-here"},
		{"UPPER case 123", "upper-case-123"},
		{"中文标题", ""},
		{"mixed 中文 title", "mixed-title"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.title); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Some Post Title #42"
	first := Slugify(title)
	for i := 0; i < 10; i++ {
		if got := Slugify(title); got != first {
			t.Fatalf("相同标题应推导出相同 slug: %q vs %q", got, first)
		}
	}
}
