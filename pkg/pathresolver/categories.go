package pathresolver

// Extension allow-lists per upload category, mirrored by the picker
// filter the UI shows.
var categoryExtensions = map[string][]string{
	"document": {".pdf", ".txt", ".md", ".doc", ".docx"},
	"video":    {".mp4", ".mov", ".avi", ".mkv", ".webm"},
	"audio":    {".mp3", ".wav", ".m4a", ".flac", ".ogg"},
	"image":    {".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"},
}

// Extensions returns the allow-list for a category, or nil for an
// unknown one.
func Extensions(category string) []string {
	exts, ok := categoryExtensions[category]
	if !ok {
		return nil
	}
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// Categories returns all category filters keyed by name.
func Categories() map[string][]string {
	out := make(map[string][]string, len(categoryExtensions))
	for name := range categoryExtensions {
		out[name] = Extensions(name)
	}
	return out
}
