package fsx

import "testing"

func TestSanitizePath(t *testing.T) {
	cases := []struct {
		in      string
		wantRel string
		wantOK  bool
	}{
		{"/", "index.html", true},
		{"", "index.html", true},
		{"/index.html", "index.html", true},
		{"/foo/bar.txt", "foo/bar.txt", true},
		{"/foo/./bar.txt", "foo/bar.txt", true},
		{"/foo/../bar.txt", "bar.txt", true},
		{"/../../etc/passwd", "", false},
		{"/foo/../../bar.txt", "", false},
		{"/.hidden", "", false},
		{"/foo/.hidden", "", false},
		{`C:\Windows\System32`, "", false},
		{`\\server\share`, "", false},
		{`/foo\bar`, "foo/bar", true},
		{"/foo/bar<baz", "", false},
		{"/foo/bar|baz", "", false},
	}
	for _, c := range cases {
		got, ok := SanitizePath(c.in)
		if ok != c.wantOK {
			t.Errorf("SanitizePath(%q) ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if ok && got != c.wantRel {
			t.Errorf("SanitizePath(%q) = %q, want %q", c.in, got, c.wantRel)
		}
	}
}

func TestSanitizePathNeverEscapesRoot(t *testing.T) {
	attempts := []string{
		"/../secret",
		"/a/../../b",
		"/a/b/../../../c",
		"/./../../x",
	}
	for _, in := range attempts {
		if rel, ok := SanitizePath(in); ok {
			t.Errorf("SanitizePath(%q) = %q, ok=true; want rejected", in, rel)
		}
	}
}
