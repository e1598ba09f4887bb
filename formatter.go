package lexdoc

import (
	"fmt"
	"strings"
)

// FormatResults formats ranked documents as a numbered list for display
// or LLM context. Each line carries the title followed by whatever
// metadata is known (date, file type, size) and the best available URL.
func FormatResults(docs []RankedDocument) string {
	if len(docs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, d := range docs {
		var meta []string
		if d.PublishedDate != nil {
			meta = append(meta, d.PublishedDate.Format("2006-01-02"))
		}
		if d.FileType != "" {
			meta = append(meta, d.FileType)
		}
		if d.FileSizeBytes != nil {
			meta = append(meta, fmt.Sprintf("%d bytes", *d.FileSizeBytes))
		}

		url := d.DocURL
		if url == "" {
			url = d.DownloadURL
		}
		if url == "" {
			url = d.PageURL
		}

		fmt.Fprintf(&sb, "%d. %s", i+1, strings.TrimSpace(d.Title))
		if len(meta) > 0 {
			fmt.Fprintf(&sb, " — %s", strings.Join(meta, ", "))
		}
		if url != "" {
			fmt.Fprintf(&sb, " — %s", url)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
