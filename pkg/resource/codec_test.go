package resource

import (
	"testing"
)

func TestIsAbsPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/user/a.pdf", true},
		{"C:\\docs\\a.pdf", true},
		{"c:/docs/a.pdf", true},
		{"docs/a.pdf", false},
		{"./a.pdf", false},
		{"", false},
		{"C:", false},
	}

	for _, tt := range tests {
		if got := IsAbsPath(tt.path); got != tt.want {
			t.Errorf("IsAbsPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPathToResourceID(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "posix path",
			path: "/home/user/a.pdf",
			want: "localfile:///home/user/a.pdf",
		},
		{
			name: "drive letter with backslashes",
			path: "C:\\docs\\a.pdf",
			want: "localfile://C/docs/a.pdf",
		},
		{
			name: "drive letter with forward slashes",
			path: "C:/docs/a.pdf",
			want: "localfile://C/docs/a.pdf",
		},
		{
			name: "path with spaces",
			path: "/home/user/my file.pdf",
			want: "localfile:///home/user/my%20file.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathToResourceID(tt.path)
			if err != nil {
				t.Fatalf("PathToResourceID(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("PathToResourceID(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathToResourceIDRejectsRelative(t *testing.T) {
	if _, err := PathToResourceID("docs/a.pdf"); err == nil {
		t.Error("expected error for relative path")
	}
}

func TestResourceIDRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantBack string
	}{
		{
			name:     "posix survives verbatim",
			path:     "/home/user/a.pdf",
			wantBack: "/home/user/a.pdf",
		},
		{
			name:     "backslash drive path comes back forward-slashed",
			path:     "C:\\docs\\a.pdf",
			wantBack: "C:/docs/a.pdf",
		},
		{
			name:     "forward-slash drive path",
			path:     "D:/media/clip.mp4",
			wantBack: "D:/media/clip.mp4",
		},
		{
			name:     "spaces survive the trip",
			path:     "/home/user/my file.pdf",
			wantBack: "/home/user/my file.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := PathToResourceID(tt.path)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			back, err := ResourceIDToPath(id)
			if err != nil {
				t.Fatalf("decode %q: %v", id, err)
			}
			if back != tt.wantBack {
				t.Errorf("round trip of %q = %q, want %q", tt.path, back, tt.wantBack)
			}
		})
	}
}

func TestResourceIDToPathRejectsForeignScheme(t *testing.T) {
	if _, err := ResourceIDToPath("https://example.com/a.pdf"); err == nil {
		t.Error("expected error for foreign scheme")
	}
}
